package module

// DefaultPortName is the port name a module exposes to be addressable by
// its bare name in port resolution.
const DefaultPortName = "default"

// Port is a named slot on a module: an object reference plus a
// vocabulary binding.
type Port struct {
	Object  any
	Binding Binding
}

// portDirection selects between a module's input and output port maps
type portDirection int

const (
	directionInput portDirection = iota
	directionOutput
)

// portMap is an insertion-ordered port registry; enumeration follows
// declaration order.
type portMap struct {
	names []string
	ports map[string]Port
}

func newPortMap() *portMap {
	return &portMap{
		ports: make(map[string]Port),
	}
}

// set inserts or replaces a port; a replaced port keeps its position
func (pm *portMap) set(name string, p Port) {
	if _, exists := pm.ports[name]; !exists {
		pm.names = append(pm.names, name)
	}
	pm.ports[name] = p
}

func (pm *portMap) get(name string) (Port, bool) {
	p, exists := pm.ports[name]
	return p, exists
}

// childSet is an insertion-ordered child module registry; enumeration
// follows registration order.
type childSet struct {
	names  []string
	byName map[string]*Module
}

func newChildSet() *childSet {
	return &childSet{
		byName: make(map[string]*Module),
	}
}

func (cs *childSet) set(name string, m *Module) {
	if _, exists := cs.byName[name]; !exists {
		cs.names = append(cs.names, name)
	}
	cs.byName[name] = m
}

func (cs *childSet) get(name string) (*Module, bool) {
	m, exists := cs.byName[name]
	return m, exists
}

func (cs *childSet) len() int {
	return len(cs.byName)
}
