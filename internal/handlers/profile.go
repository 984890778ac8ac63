package handlers

import (
	"fmt"

	"cloud-demo-apps/internal/config"
)

// Profile describes the routes one deployment target exposes
type Profile struct {
	Name string
	// HealthJSON answers /health with {"status":"ok"} instead of plain "ok"
	HealthJSON bool
	// IndexMessage is served on / when non-empty
	IndexMessage string
	// API enables /api/hello and /api/node
	API bool
}

var profiles = map[string]Profile{
	config.ProfileEC2: {
		Name:         config.ProfileEC2,
		HealthJSON:   true,
		IndexMessage: "Hello, Gin on EC2!",
	},
	config.ProfileECS: {
		Name:         config.ProfileECS,
		IndexMessage: "Hello from ECS!",
	},
	config.ProfileALBCluster: {
		Name: config.ProfileALBCluster,
		API:  true,
	},
	config.ProfileLocal: {
		Name:         config.ProfileLocal,
		IndexMessage: "Hello from local!",
		API:          true,
	},
}

// LookupProfile returns the named profile. A non-empty override replaces
// the index message of profiles that serve one.
func LookupProfile(name, indexOverride string) (Profile, error) {
	p, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q", name)
	}
	if indexOverride != "" && p.IndexMessage != "" {
		p.IndexMessage = indexOverride
	}
	return p, nil
}
