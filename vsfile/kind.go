// Package vsfile provides typed handles for the files and directories a
// Visual Studio solution references: language-specific project files,
// web-site directories, and the source files they contain.
package vsfile

// Kind identifies the language of a project file. Behavior differs only
// in constants, so a kind tag on a single record replaces any per-language
// type hierarchy.
type Kind int

const (
	// KindBasic is a VB.NET project
	KindBasic Kind = iota
	// KindCSharp is a C# project
	KindCSharp
	// KindFSharp is an F# project
	KindFSharp
)

// String returns the display name of the kind
func (k Kind) String() string {
	switch k {
	case KindBasic:
		return "VB.NET"
	case KindCSharp:
		return "C#"
	case KindFSharp:
		return "F#"
	default:
		return "unknown"
	}
}

// ProjectExtension returns the project file extension for the kind
func (k Kind) ProjectExtension() string {
	switch k {
	case KindBasic:
		return ".vbproj"
	case KindCSharp:
		return ".csproj"
	case KindFSharp:
		return ".fsproj"
	default:
		return ""
	}
}

// SourceExtension returns the source file extension for the kind
func (k Kind) SourceExtension() string {
	switch k {
	case KindBasic:
		return ".vb"
	case KindCSharp:
		return ".cs"
	case KindFSharp:
		return ".fs"
	default:
		return ""
	}
}

// SourceExtensions lists every source extension a web-site directory scan considers
func SourceExtensions() []string {
	return []string{".vb", ".cs", ".fs"}
}
