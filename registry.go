package jsonapi

// Resource is implemented by every decoded domain object. Identity is the
// (type, id) pair; decoded resources are never mutated after construction.
type Resource interface {
	ResourceID() string
	ResourceType() string
}

// DecodeFunc constructs a concrete resource from its ResourceData view or
// fails with a ResourceError. This is the single extension point for adding a
// new domain type; implementations must read only through the ResourceData
// accessors, never raw JSON.
type DecodeFunc func(rd *ResourceData) (Resource, error)

// Registry maps wire-level type tags to the decode function responsible for
// each tag. The set is closed once registration is complete: register every
// variant up front, then hand the registry to a Deserializer and stop
// mutating it.
type Registry struct {
	decoders map[string]DecodeFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{decoders: make(map[string]DecodeFunc)}
}

// Register binds tag to decode and returns the registry for chaining.
// Registering an already-bound tag replaces the previous decoder.
func (r *Registry) Register(tag string, decode DecodeFunc) *Registry {
	r.decoders[tag] = decode
	return r
}

// Resolve looks up the decoder for tag. Unknown tags yield ok=false, never an
// error; callers decide whether absence is fatal to the entry or the whole
// operation.
func (r *Registry) Resolve(tag string) (DecodeFunc, bool) {
	d, ok := r.decoders[tag]
	return d, ok
}

// Tags returns the number of registered type tags.
func (r *Registry) Tags() int { return len(r.decoders) }
