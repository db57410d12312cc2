package company

import "time"

// Company is the organization. One IANA timezone applies to every team
// and worker in it; the engine never mixes zones.
type Company struct {
	ID        string
	Name      string
	Timezone  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
