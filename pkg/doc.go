// Package pkg provides the core libraries for mvnsrc source extraction.
//
// # Overview
//
// Mvnsrc collects readable source code for every dependency of a Maven
// project, unpacking published source jars and decompiling binaries when no
// sources exist. The pkg directory is organized into three main areas:
//
//  1. [maven], [repository] - Maven interaction (tree resolution, artifact lookup)
//  2. [archive], [decompile], [extract] - Source recovery (unpacking, decompilation, orchestration)
//  3. [errors], [procutil], [treeviz], [buildinfo] - Supporting libraries
//
// # Architecture
//
// The typical data flow through mvnsrc:
//
//	Maven project (pom.xml)
//	         ↓
//	    [maven] package (invoke mvn, parse the dependency tree)
//	         ↓
//	    [repository] package (locate source and binary jars in ~/.m2)
//	         ↓
//	    [archive] / [decompile] packages (unpack or decompile)
//	         ↓
//	    one source directory per artifact
//
// # Quick Start
//
// Resolve a project's dependencies and extract their sources:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/mvnsrc/pkg/extract"
//	    "github.com/matzehuels/mvnsrc/pkg/maven"
//	    "github.com/matzehuels/mvnsrc/pkg/repository"
//	)
//
//	// 1. Find a usable mvn executable
//	mvn, _ := maven.Find(context.Background())
//
//	// 2. Wire the orchestrator
//	extractor := extract.New(extract.Options{
//	    Invoker:   &maven.Invoker{Maven: mvn, ProjectDir: "/path/to/project"},
//	    Locator:   &repository.Locator{Root: repository.DefaultRoot()},
//	    OutputDir: "/path/to/project/third",
//	})
//
//	// 3. Run the extraction
//	stats, _ := extractor.Run(context.Background())
//
// # Main Packages
//
// ## Maven Interaction
//
// [maven] - Detects the mvn executable (MAVEN_HOME, then PATH), shells out to
// dependency:tree and dependency:sources, and parses Maven's tree output into
// flat dependency lists or depth-annotated graphs.
//
// [repository] - Maps coordinates to artifact paths in the local repository
// and reports which of the binary and source jars actually exist.
//
// ## Source Recovery
//
// [archive] - Extraction of zip-family archives (.jar, .zip) and gzipped
// tarballs, plus the directory copy and delete primitives used to relocate
// decompiler output.
//
// [decompile] - Runs a Fernflower decompiler jar over binary artifacts as the
// fallback for dependencies that publish no source jar.
//
// [extract] - The per-dependency orchestration: one pass over the tree,
// source jar preferred, decompiler fallback, per-outcome statistics.
//
// ## Supporting Libraries
//
// [errors] - Coded errors shared by all packages, with user-facing messages
// and path-safety validation helpers.
//
// [procutil] - Subprocess execution with timeouts, concurrent output
// draining, and a short grace period for readers after kill.
//
// [treeviz] - Renders parsed dependency graphs as indented text, Graphviz
// DOT, SVG, or a JSON node/edge document.
//
// [buildinfo] - Build metadata injected via ldflags for --version output.
//
// [maven]: https://pkg.go.dev/github.com/matzehuels/mvnsrc/pkg/maven
// [repository]: https://pkg.go.dev/github.com/matzehuels/mvnsrc/pkg/repository
// [extract]: https://pkg.go.dev/github.com/matzehuels/mvnsrc/pkg/extract
package pkg
