package provider

import "fmt"

// Identity is the stable key for a concrete capability instance: it
// distinguishes two providers exposing the same model name under different
// extensions, so embedding caches keyed by identity never collide across
// extensions.
type Identity struct {
	ExtensionURI string
	CapabilityID string
	Name         string
}

// String renders the identity as the flat string used as a map key in
// on-disk document metadata.
func (id Identity) String() string {
	return fmt.Sprintf("%s#%s#%s", id.ExtensionURI, id.CapabilityID, id.Name)
}

// Identified is implemented by every provider trait instance.
type Identified interface {
	Identity() Identity
}
