package yamlfamily

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/baliza/genesis/internal/domain"
	"github.com/baliza/genesis/internal/ports"
)

type Loader struct {
	familiesDir string
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{familiesDir: "families"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithFamiliesDir(dir string) Option {
	return func(l *Loader) { l.familiesDir = dir }
}

var (
	_ ports.FamilyLoader  = (*Loader)(nil)
	_ ports.FamilyCatalog = (*Loader)(nil)
)

func (l *Loader) LoadFamily(path string) (domain.FamilySpec, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.FamilySpec{}, &domain.OpError{
			Op:   "yamlfamily.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var yf yamlFamily
	if err := yaml.Unmarshal(b, &yf); err != nil {
		return domain.FamilySpec{}, &domain.OpError{
			Op:   "yamlfamily.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapAndValidate(path, yf)
}

func (l *Loader) ListFamilies(root string) ([]domain.FamilyRef, error) {
	dir := filepath.Join(root, l.familiesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlfamily.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.FamilyRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		p := filepath.Join(dir, name)
		n, _ := readFamilyName(p)
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(name, filepath.Ext(name))
		}

		refs = append(refs, domain.FamilyRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func readFamilyName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}

type yamlFamily struct {
	Name    string       `yaml:"name"`
	Members []yamlMember `yaml:"members"`
}

type yamlMember struct {
	Name   string `yaml:"name"`
	Sex    string `yaml:"sex"`
	Mother string `yaml:"mother"`
	Father string `yaml:"father"`
}

// mapAndValidate checks the shape of the file only. Whether each member can
// actually be born is decided by the domain when the family is built.
func mapAndValidate(path string, yf yamlFamily) (domain.FamilySpec, error) {
	if strings.TrimSpace(yf.Name) == "" {
		return domain.FamilySpec{}, invalidField(path, "name", "family name is required")
	}

	spec := domain.FamilySpec{
		Name:    strings.TrimSpace(yf.Name),
		Members: make([]domain.MemberSpec, 0, len(yf.Members)),
	}

	for i, m := range yf.Members {
		fieldPrefix := fmt.Sprintf("members[%d]", i)

		if strings.TrimSpace(m.Name) == "" {
			return domain.FamilySpec{}, invalidField(path, fieldPrefix+".name", "member name is required")
		}

		sex, err := domain.ParseSex(m.Sex)
		if err != nil {
			return domain.FamilySpec{}, invalidField(path, fieldPrefix+".sex", err.Error())
		}

		spec.Members = append(spec.Members, domain.MemberSpec{
			Name:   strings.TrimSpace(m.Name),
			Sex:    sex,
			Mother: strings.TrimSpace(m.Mother),
			Father: strings.TrimSpace(m.Father),
		})
	}

	return spec, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlfamily.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s", field, msg),
	}
}
