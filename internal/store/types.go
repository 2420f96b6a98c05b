package store

import "time"

type File struct {
	ID          int64
	Path        string
	PackageDir  string
	Hash        string
	LastIndexed time.Time
}

// TypeDecl is a named type declaration. Underlying is the source text of the
// type expression; IsForeign marks declarations over a type from another
// package (e.g. "type C geom.Circle").
type TypeDecl struct {
	ID         int64
	FileID     int64
	PackageDir string
	Name       string
	Kind       string
	Underlying string
	IsForeign  bool
	Line       int
}

// Method is a method declaration. Params and Result hold the source text of
// the parameter and result lists with whitespace collapsed.
type Method struct {
	ID              int64
	FileID          int64
	PackageDir      string
	Receiver        string
	Name            string
	Params          string
	Result          string
	PointerReceiver bool
	Line            int
}

// Implementer joins a type declaration with the method that gives it a
// capability.
type Implementer struct {
	Type            string
	PackageDir      string
	TypeFile        string
	TypeLine        int
	MethodFile      string
	MethodLine      int
	PointerReceiver bool
	Underlying      string
	IsForeign       bool
}
