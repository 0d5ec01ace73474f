// Package augment holds the static augmentation layer: literal entries merged
// into rendered output that are not extracted from the résumé source
// (headline, intro, summary template, general skills, certifications, asset
// paths and icon names).
package augment

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"gopkg.in/yaml.v3"
)

const invalidLayerCode = "AUGMENTATION_INVALID"

//go:embed defaults.yaml
var defaultsYAML []byte

var identifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// GeneralSkill is a skill listed under the "General" category.
type GeneralSkill struct {
	Name string `yaml:"name" json:"name"`
	Icon string `yaml:"icon" json:"icon"`
}

// Certification is a static certification entry. An empty Icon falls back to
// Icons.Certification.
type Certification struct {
	Name   string `yaml:"name" json:"name"`
	Issuer string `yaml:"issuer" json:"issuer"`
	Date   string `yaml:"date" json:"date"`
	Icon   string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// Icons names the icon component used for each generated list.
type Icons struct {
	Experience    string `yaml:"experience" json:"experience"`
	Education     string `yaml:"education" json:"education"`
	Volunteering  string `yaml:"volunteering" json:"volunteering"`
	Certification string `yaml:"certification" json:"certification"`
	Language      string `yaml:"language" json:"language"`
	Framework     string `yaml:"framework" json:"framework"`
	Tool          string `yaml:"tool" json:"tool"`
	LinkedIn      string `yaml:"linkedin" json:"linkedin"`
	GitHub        string `yaml:"github" json:"github"`
	Email         string `yaml:"email" json:"email"`
}

// Layer is the augmentation data merged at render time.
type Layer struct {
	Title      string `yaml:"title" json:"title"`
	ShortIntro string `yaml:"short_intro" json:"shortIntro"`
	// Summary is a pongo2 template; the renderer exposes the record's name
	// and gpa to it.
	Summary        string          `yaml:"summary" json:"summary"`
	GeneralSkills  []GeneralSkill  `yaml:"general_skills" json:"generalSkills"`
	Certifications []Certification `yaml:"certifications" json:"certifications"`
	CVPath         string          `yaml:"cv_path" json:"cvPath"`
	ImageURL       string          `yaml:"image_url" json:"imageUrl"`
	DataAIHint     string          `yaml:"data_ai_hint" json:"dataAiHint"`
	Icons          Icons           `yaml:"icons" json:"icons"`
}

// DefaultsYAML returns a copy of the embedded default layer document.
func DefaultsYAML() []byte {
	out := make([]byte, len(defaultsYAML))
	copy(out, defaultsYAML)
	return out
}

// Default decodes the embedded defaults.
func Default() (*Layer, error) {
	layer := &Layer{}
	if err := yaml.Unmarshal(defaultsYAML, layer); err != nil {
		return nil, fmt.Errorf("augment: decode defaults: %w", err)
	}
	return layer, nil
}

// MustDefault panics when the embedded defaults fail to decode.
func MustDefault() *Layer {
	layer, err := Default()
	if err != nil {
		panic(err)
	}
	return layer
}

// Decode applies a YAML document over the defaults. Keys absent from data keep
// their default value; lists present in data replace the default list.
func Decode(data []byte) (*Layer, error) {
	layer, err := Default()
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, layer); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "augmentation document is not valid YAML").
			WithTextCode(invalidLayerCode)
	}
	if err := layer.Validate(); err != nil {
		return nil, err
	}
	return layer, nil
}

// Load reads an override file and decodes it over the defaults. An empty path
// yields the defaults.
func Load(path string) (*Layer, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("augment: read %s: %w", path, err)
	}
	return Decode(data)
}

// Validate checks that every icon is a bare identifier so it can be emitted
// unquoted and imported by name.
func (l *Layer) Validate() error {
	if l == nil {
		return goerrors.Wrap(errors.New("augment: layer is nil"), goerrors.CategoryValidation, "augmentation layer missing").
			WithTextCode(invalidLayerCode)
	}
	var problems []string
	check := func(field, icon string) {
		if !identifierRe.MatchString(icon) {
			problems = append(problems, fmt.Sprintf("%s: %q is not an identifier", field, icon))
		}
	}

	check("icons.experience", l.Icons.Experience)
	check("icons.education", l.Icons.Education)
	check("icons.volunteering", l.Icons.Volunteering)
	check("icons.certification", l.Icons.Certification)
	check("icons.language", l.Icons.Language)
	check("icons.framework", l.Icons.Framework)
	check("icons.tool", l.Icons.Tool)
	check("icons.linkedin", l.Icons.LinkedIn)
	check("icons.github", l.Icons.GitHub)
	check("icons.email", l.Icons.Email)
	for i, skill := range l.GeneralSkills {
		check(fmt.Sprintf("general_skills[%d].icon", i), skill.Icon)
	}
	for i, cert := range l.Certifications {
		if cert.Icon != "" {
			check(fmt.Sprintf("certifications[%d].icon", i), cert.Icon)
		}
	}

	if len(problems) > 0 {
		return goerrors.Wrap(errors.New(strings.Join(problems, "; ")), goerrors.CategoryValidation, "invalid augmentation icons").
			WithTextCode(invalidLayerCode)
	}
	return nil
}

// CertificationIcon resolves the icon for one certification.
func (l *Layer) CertificationIcon(cert Certification) string {
	if cert.Icon != "" {
		return cert.Icon
	}
	return l.Icons.Certification
}

// IconNames returns the sorted, de-duplicated icon identifiers used by the
// layer. Section icons are reported only when the caller marks the section as
// present so generated imports carry no unused names.
func (l *Layer) IconNames(used Usage) []string {
	set := make(map[string]struct{})
	add := func(name string) {
		if name != "" {
			set[name] = struct{}{}
		}
	}

	if used.Experience {
		add(l.Icons.Experience)
	}
	if used.Education {
		add(l.Icons.Education)
	}
	if used.Volunteering {
		add(l.Icons.Volunteering)
	}
	if used.Languages {
		add(l.Icons.Language)
	}
	if used.Frameworks {
		add(l.Icons.Framework)
	}
	if used.Tools {
		add(l.Icons.Tool)
	}
	for _, skill := range l.GeneralSkills {
		add(skill.Icon)
	}
	for _, cert := range l.Certifications {
		add(l.CertificationIcon(cert))
	}
	add(l.Icons.LinkedIn)
	add(l.Icons.GitHub)
	add(l.Icons.Email)

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Usage reports which record sections produced output lines.
type Usage struct {
	Experience   bool
	Education    bool
	Volunteering bool
	Languages    bool
	Frameworks   bool
	Tools        bool
}
