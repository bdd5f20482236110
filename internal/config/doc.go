// Package config defines the run configuration of the maze solver and loads
// it from HCL files.
//
// A configuration file looks like:
//
//	algorithm      = "greedy"
//	max_expansions = 5000
//	trace          = true
//
//	maze {
//	  rows = [
//	    "+++++",
//	    "+s e+",
//	    "+++++",
//	  ]
//	}
//
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
//
// Instead of an inline maze block, maze_file may point at a plain-text maze;
// relative paths are resolved against the directory of the configuration
// file. Every attribute is optional; omitted values keep their defaults.
package config
