package swift

import (
	"strings"
	"text/template"
)

const (
	SWIFT_TEMPLATE = `// Code generated by swift-bridge. DO NOT EDIT.
// Module: {{.Module}}
{{- if .OpaqueTypes}}
// Opaque types: {{join .OpaqueTypes ", "}}
{{- end}}
{{range $_, $func := .Funcs}}
public func {{$func.Name}}({{$func.Params}}){{$func.Return}} {
    {{$func.Call}}
}
{{end -}}
{{range $_, $ext := .Extensions}}
extension {{$ext.Owner}} {
{{- range $_, $func := $ext.Methods}}
    public {{if $func.IsStatic}}static {{end}}func {{$func.Name}}({{$func.Params}}){{$func.Return}} {
        {{$func.Call}}
    }
{{- end}}
}
{{end -}}
`
)

// TemplateData is everything the Swift template renders
type TemplateData struct {
	Module      string
	OpaqueTypes []string
	Funcs       []*Func
	Extensions  []*Extension
}

var swiftTemplate *template.Template

func init() {
	funcs := template.FuncMap{"join": strings.Join}
	if tmpl, err := template.New("swiftTemplate").Funcs(funcs).Parse(SWIFT_TEMPLATE); err != nil {
		panic(err)
	} else {
		swiftTemplate = tmpl
	}
}
