package pipeline

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/backmassage/bakesmith/internal/bakemode"
	"github.com/backmassage/bakesmith/internal/bakeset"
	"github.com/backmassage/bakesmith/internal/config"
	"github.com/backmassage/bakesmith/internal/scene"
)

// Report is the machine-readable result for one scene.
type Report struct {
	Scene  string      `yaml:"scene" json:"scene"`
	Mode   string      `yaml:"mode" json:"mode"`
	Sets   []SetReport `yaml:"sets" json:"sets"`
	Images []string    `yaml:"baked_images,omitempty" json:"baked_images,omitempty"`
}

// SetReport describes one bake set by object name.
type SetReport struct {
	Name    string   `yaml:"name" json:"name"`
	Texture string   `yaml:"texture" json:"texture"`
	Low     []string `yaml:"low" json:"low"`
	Cage    []string `yaml:"cage,omitempty" json:"cage,omitempty"`
	High    []string `yaml:"high,omitempty" json:"high,omitempty"`
	Float   []string `yaml:"float,omitempty" json:"float,omitempty"`
	Issue   string   `yaml:"issue,omitempty" json:"issue,omitempty"`
	Issues  []string `yaml:"issues,omitempty" json:"issues,omitempty"`
	Message string   `yaml:"message,omitempty" json:"message,omitempty"`
}

// BuildReport converts resolved sets into a Report. images are the image
// datablocks of the scene; those belonging to a set are listed.
func BuildReport(path string, mode bakemode.Mode, sets []*bakeset.BakeSet, images []string) Report {
	r := Report{
		Scene:  path,
		Mode:   mode.Name,
		Sets:   make([]SetReport, 0, len(sets)),
		Images: bakeset.BakedImages(sets, images),
	}
	for _, s := range sets {
		sr := SetReport{
			Name:    s.Name,
			Texture: mode.TextureName(s),
			Low:     objectNames(s.Low),
			Cage:    objectNames(s.Cage),
			High:    objectNames(s.High),
			Float:   objectNames(s.Float),
		}
		if s.HasIssues {
			sr.Issue = string(s.Issue)
			sr.Message = s.Issue.Message()
			for _, c := range s.Issues {
				sr.Issues = append(sr.Issues, string(c))
			}
		}
		r.Sets = append(r.Sets, sr)
	}
	return r
}

// WriteReports writes reports to w: YAML as one document per scene, JSON
// as a single indented array.
func WriteReports(w io.Writer, format config.OutputFormat, reports []Report) error {
	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, r := range reports {
			if err := enc.Encode(r); err != nil {
				return fmt.Errorf("encode yaml report: %w", err)
			}
		}
		return enc.Close()
	case config.FormatJSON:
		if reports == nil {
			reports = []Report{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("format %q has no document writer", format)
	}
}

func objectNames(objs []*scene.Object) []string {
	out := make([]string, 0, len(objs))
	for _, o := range objs {
		out = append(out, o.Name)
	}
	return out
}
