package gpu

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed shaders/transition.wgsl
var transitionSource string

//go:embed shaders/cell.wgsl
var cellSource string

// Program is one WGSL source text plus the entry points a shader backend
// should compile from it.
type Program struct {
	Name    string
	Source  string
	Entries []string
}

// Programs returns the two pipeline programs: the transition rule
// ("computeMain") and the cell visualization ("vertexMain"/"fragmentMain").
// Both are validated against their declared entries; a malformed source is
// a startup failure, never a degraded mode.
func Programs() ([]Program, error) {
	progs := []Program{
		{Name: "transition", Source: transitionSource, Entries: []string{"computeMain"}},
		{Name: "cell", Source: cellSource, Entries: []string{"vertexMain", "fragmentMain"}},
	}
	for _, p := range progs {
		if err := p.validate(); err != nil {
			return nil, err
		}
	}
	return progs, nil
}

func (p Program) validate() error {
	if strings.TrimSpace(p.Source) == "" {
		return fmt.Errorf("gpu: program %q has empty source", p.Name)
	}
	for _, entry := range p.Entries {
		if !strings.Contains(p.Source, "fn "+entry+"(") {
			return fmt.Errorf("gpu: program %q missing entry %q", p.Name, entry)
		}
	}
	return nil
}
