// Package layout renders JSON documents in the MathFlow file layout.
//
// The layout is a fixed hybrid of pretty and compact printing:
//
//	{
//	    "version": 2,
//	    "nodes": [
//	        { "id": 1, "x": 2.5 },
//	        { "id": 2, "x": 3.0 }
//	    ],
//	    "links": [
//	        { "src": 1, "dst": 2 }
//	    ],
//	    "meta": {
//	        "name": "café"
//	    }
//	}
//
// Top-level members are indented four spaces. The "nodes" and "links"
// arrays, which hold one record per graph element, get one line per element
// with the braces of object elements padded by a space. Every other member
// is pretty-printed with four-space indentation, one level deep.
//
// Strings are quoted with minimal escaping, so non-ASCII text is written
// literally. Numbers are written exactly as they appeared in the source.
//
// The rules are constants of the file format, not options.
package layout
