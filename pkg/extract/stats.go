package extract

// Stats tallies per-dependency outcomes of one extraction run. Total is
// fixed when the run starts; every processed dependency increments exactly
// one of the four outcome counters.
type Stats struct {
	Total           int
	SourceExtracted int
	Decompiled      int
	Skipped         int
	Failed          int
}

// Processed returns how many dependencies have reached an outcome. After a
// completed run this equals Total.
func (s *Stats) Processed() int {
	return s.SourceExtracted + s.Decompiled + s.Skipped + s.Failed
}
