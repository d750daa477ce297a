package style

// DeclPath is a root-to-leaf sequence of frames ending in one Declaration.
type DeclPath []Node

// Frames returns every element but the terminal one.
func (p DeclPath) Frames() []Node {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

// Terminal returns the last element of the path, or nil when empty.
func (p DeclPath) Terminal() Node {
	if len(p) == 0 {
		return nil
	}
	return p[len(p)-1]
}

// Declaration returns the terminal declaration, if the path ends in one.
func (p DeclPath) Declaration() (*Declaration, bool) {
	d, ok := p.Terminal().(*Declaration)
	return d, ok
}
