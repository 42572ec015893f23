package msbuild

import "encoding/xml"

// RootElement represents the root <Project> element of a project file.
type RootElement struct {
	XMLName    xml.Name    `xml:"Project"`
	Sdk        string      `xml:"Sdk,attr,omitempty"`
	ToolsVer   string      `xml:"ToolsVersion,attr,omitempty"`
	ItemGroups []ItemGroup `xml:"ItemGroup"`
}

// ItemGroup represents an <ItemGroup> element containing compile items or other items.
type ItemGroup struct {
	Condition string        `xml:"Condition,attr,omitempty"`
	Compiles  []CompileItem `xml:"Compile"`
}

// CompileItem represents a <Compile> element naming a compiled source file.
type CompileItem struct {
	Include string `xml:"Include,attr"`
	// AutoGen marks designer-generated entries ("True" for *.Designer.cs and friends)
	AutoGen string `xml:"AutoGen"`
	// DependentUpon links a generated file to the file it was generated from
	DependentUpon string `xml:"DependentUpon"`
}
