// Package solution parses Visual Studio solution files and resolves the
// typed project references they contain.
package solution

// Reference is one parsed Project block from a solution file:
//
//	Project("{TYPE-GUID}") = "Name", "RelativePath", "{UNIQUE-GUID}"
//
// Path holds the authoritative relative path: the header's literal path,
// or the corrected path produced by a PathResolver for project types
// whose header path is a generated display name.
type Reference struct {
	// Name is the display name of the referenced project
	Name string

	// Path is the relative path to the project file or directory
	Path string

	// TypeGUID identifies the project type (C#, VB.NET, F#, web site, ...)
	TypeGUID string

	// GUID is the unique identifier for this project instance
	GUID string
}

// ProjectType GUIDs for the project types this package recognizes.
// Anything else in a solution file is silently skipped.
const (
	// ProjectTypeCSProject identifies a C# project (classic)
	ProjectTypeCSProject = "{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}"

	// ProjectTypeCSProjectSDK identifies a SDK-style C# project (.NET Core/.NET 5+)
	ProjectTypeCSProjectSDK = "{9A19103F-16F7-4668-BE54-9A1E7A4F7556}"

	// ProjectTypeVBProject identifies a VB.NET project
	ProjectTypeVBProject = "{F184B08F-C81C-45F6-A57F-5ABD9991F28F}"

	// ProjectTypeFSProject identifies an F# project
	ProjectTypeFSProject = "{F2A71F9B-5D33-465A-A702-920D77279786}"

	// ProjectTypeWebSite identifies a website project
	ProjectTypeWebSite = "{E24C65DC-7377-472B-9ABA-BC803B73C61A}"

	// ProjectTypeSolutionFolder identifies a solution folder
	ProjectTypeSolutionFolder = "{2150E333-8FDC-42A3-9474-1A3956D46DE8}"
)
