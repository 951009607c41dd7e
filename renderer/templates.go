package renderer

import (
	"html/template"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

const (
	TemplatesExtension string = ".html"
	TemplatesDirectory string = "templates"

	TemplateBase   string = "base"
	TemplateResume string = "resume"
	TemplatePrint  string = "print"
	TemplateError  string = "error"
)

func (r *Renderer) loadTemplatesWithFunctions(fns template.FuncMap) (map[string]*template.Template, error) {
	sourceFS := r.co.SourceFS()

	baseTemplateFilename := path.Join(TemplatesDirectory, TemplateBase+TemplatesExtension)
	baseTemplateData, err := sourceFS.ReadFile(baseTemplateFilename)
	if err != nil {
		return nil, err
	}

	baseTemplate, err := template.New("base").Funcs(fns).Parse(string(baseTemplateData))
	if err != nil {
		return nil, err
	}
	parsed := map[string]*template.Template{}

	err = sourceFS.Walk(TemplatesDirectory, func(filename string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		basename := filepath.Base(info.Name())
		ext := filepath.Ext(basename)

		id := strings.TrimPrefix(filename, TemplatesDirectory)
		id = strings.TrimSuffix(id, ext)
		id = strings.TrimSuffix(id, "/")
		id = strings.TrimPrefix(id, "/")

		if ext != TemplatesExtension || id == TemplateBase {
			return nil
		}

		raw, err := sourceFS.ReadFile(filename)
		if err != nil {
			return err
		}

		parsed[id], err = template.Must(baseTemplate.Clone()).New(id).Funcs(fns).Parse(string(raw))
		return err
	})

	if err != nil {
		return nil, err
	}
	return parsed, nil
}

func (r *Renderer) LoadTemplates() error {
	templates, err := r.loadTemplatesWithFunctions(r.templateFuncMap())
	if err != nil {
		return err
	}

	r.templates = templates
	return nil
}
