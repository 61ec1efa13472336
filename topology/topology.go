package topology

import (
	"fmt"
	"sort"

	"evroam/internal"
	"evroam/models"
)

// Topology is the immutable result of a Build: the hierarchy, the stations
// that could not be resolved, the cross-pool id collisions, and the flat
// reverse index. Safe for concurrent reads.
type Topology struct {
	OperatorID string              `json:"operator_id"`
	Pools      []*Pool             `json:"pools,omitempty"`
	Unresolved []UnresolvedStation `json:"unresolved,omitempty"`
	Collisions []Collision         `json:"collisions,omitempty"`

	index map[string]Placement
}

type Pool struct {
	ID       string              `json:"id"`
	Address  *models.Address     `json:"address,omitempty"`
	Geo      *models.GeoLocation `json:"geo,omitempty"`
	Stations []*Station          `json:"stations,omitempty"`
}

type Station struct {
	// ID is empty while unresolved; the station is then listed in
	// Topology.Unresolved.
	ID       string   `json:"id,omitempty"`
	FreeText string   `json:"free_text,omitempty"`
	EvseIDs  []string `json:"evse_ids"`
}

type UnresolvedStation struct {
	PoolID   string   `json:"pool_id"`
	FreeText string   `json:"free_text"`
	EvseIDs  []string `json:"evse_ids"`
}

// Collision is one station id claimed by stations of different pools.
type Collision struct {
	StationID string   `json:"station_id"`
	PoolIDs   []string `json:"pool_ids"`
}

// Placement locates one charge point in the hierarchy.
type Placement struct {
	PoolID      string              `json:"pool_id"`
	PoolAddress *models.Address     `json:"pool_address,omitempty"`
	PoolGeo     *models.GeoLocation `json:"pool_geo,omitempty"`
	StationID   string              `json:"station_id,omitempty"`
}

// ErrNotFound reports a reverse-index miss for a charge point that was
// never ingested.
type ErrNotFound struct {
	EvseID string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("charge point %s not found", e.EvseID)
}

// Lookup resolves a charge-point id to its pool and station.
func (t *Topology) Lookup(evseID string) (Placement, error) {
	p, ok := t.index[evseID]
	if !ok {
		return Placement{}, &ErrNotFound{EvseID: evseID}
	}
	return p, nil
}

// EvseCount is the number of indexed charge points.
func (t *Topology) EvseCount() int {
	return len(t.index)
}

// verify groups stations by resolved id across all pools. Colliding
// stations are reported, never merged or renamed.
func (t *Topology) verify() {
	claims := make(map[string][]string)
	for _, pool := range t.Pools {
		for _, station := range pool.Stations {
			if station.ID == "" {
				continue
			}
			claims[station.ID] = append(claims[station.ID], pool.ID)
		}
	}
	ids := make([]string, 0, len(claims))
	for id := range claims {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		pools := uniquePools(claims[id])
		if len(pools) > 1 {
			t.Collisions = append(t.Collisions, Collision{StationID: id, PoolIDs: pools})
		}
	}
}

func uniquePools(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	var out []string
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// buildIndex runs one pass over all pools and stations; the first writer
// for a charge-point id wins, later duplicates anywhere in the operator
// are logged and ignored.
func (t *Topology) buildIndex(log internal.LogHandler) {
	for _, pool := range t.Pools {
		for _, station := range pool.Stations {
			for _, evseID := range station.EvseIDs {
				if _, ok := t.index[evseID]; ok {
					if log != nil {
						log.Warn(fmt.Sprintf("operator %s: charge point %s already indexed, ignoring duplicate", t.OperatorID, evseID))
					}
					continue
				}
				t.index[evseID] = Placement{
					PoolID:      pool.ID,
					PoolAddress: pool.Address,
					PoolGeo:     pool.Geo,
					StationID:   station.ID,
				}
			}
		}
	}
}
