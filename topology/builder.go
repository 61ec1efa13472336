package topology

import (
	"fmt"

	"evroam/internal"
	"evroam/models"
	"evroam/oicp"
)

// Builder aggregates the flat charge-point feed of one operator into the
// Pool → Station → EVSE hierarchy. Ingestion is not synchronized; route
// all AddOrUpdate calls for an operator through one goroutine or guard the
// Builder externally. Build consumes the Builder, so no ingestion can
// interleave with resolution.
type Builder struct {
	operator oicp.OperatorID
	pools    map[string]*poolState
	order    []string
	log      internal.LogHandler
	built    bool
}

type poolState struct {
	id       oicp.PoolID
	address  *models.Address
	geo      *models.GeoLocation
	stations map[string]*stationState
	order    []string
}

type stationState struct {
	freeText    string
	placeholder string // station-equivalent of the first member, used when the feed sent no free text
	members     []string
	memberSet   map[string]struct{}
}

func NewBuilder(operator oicp.OperatorID, log internal.LogHandler) *Builder {
	return &Builder{
		operator: operator,
		pools:    make(map[string]*poolState),
		log:      log,
	}
}

func (b *Builder) warn(text string) {
	if b.log != nil {
		b.log.Warn(text)
	}
}

// AddOrUpdate registers one charge point under its pool and station. The
// station is keyed by the wire-supplied free text; records without free
// text share one pending station per pool. Duplicate charge-point ids
// within a station are dropped, never overwritten.
func (b *Builder) AddOrUpdate(poolID string, address *models.Address, geo *models.GeoLocation, stationFreeText, evseID string) error {
	if b.built {
		return fmt.Errorf("topology for %s is already built", b.operator)
	}
	pid, err := oicp.ParsePoolID(poolID)
	if err != nil {
		return err
	}
	eid, err := oicp.ParseEvseID(evseID)
	if err != nil {
		return err
	}

	pool, ok := b.pools[pid.String()]
	if !ok {
		pool = &poolState{
			id:       pid,
			address:  address,
			geo:      geo,
			stations: make(map[string]*stationState),
		}
		b.pools[pid.String()] = pool
		b.order = append(b.order, pid.String())
	}

	station, ok := pool.stations[stationFreeText]
	if !ok {
		station = &stationState{
			freeText:  stationFreeText,
			memberSet: make(map[string]struct{}),
		}
		if stationFreeText == "" {
			equivalent, err := eid.StationEquivalent()
			if err != nil {
				return err
			}
			station.placeholder = equivalent.String()
		}
		pool.stations[stationFreeText] = station
		pool.order = append(pool.order, stationFreeText)
	}

	if _, dup := station.memberSet[eid.String()]; dup {
		b.warn(fmt.Sprintf("pool %s: duplicate charge point %s in station %q", pid, eid, stationFreeText))
		return nil
	}
	station.memberSet[eid.String()] = struct{}{}
	station.members = append(station.members, eid.String())
	return nil
}

// Build consumes the Builder and produces the immutable topology:
// station-id resolution, cross-pool collision detection and the reverse
// index all run here. Build never fails; unresolved stations and
// collisions are reported as data.
func (b *Builder) Build() *Topology {
	b.built = true
	t := &Topology{
		OperatorID: b.operator.String(),
		index:      make(map[string]Placement),
	}

	for _, poolKey := range b.order {
		ps := b.pools[poolKey]
		pool := &Pool{
			ID:      ps.id.String(),
			Address: ps.address,
			Geo:     ps.geo,
		}
		for _, stationKey := range ps.order {
			ss := ps.stations[stationKey]
			station := &Station{
				FreeText: ss.freeText,
				EvseIDs:  append([]string(nil), ss.members...),
			}
			if id, ok := b.resolveStationID(ss); ok {
				station.ID = id
			} else {
				t.Unresolved = append(t.Unresolved, UnresolvedStation{
					PoolID:   pool.ID,
					FreeText: ss.freeText,
					EvseIDs:  station.EvseIDs,
				})
			}
			pool.Stations = append(pool.Stations, station)
		}
		t.Pools = append(t.Pools, pool)
	}

	t.verify()
	t.buildIndex(b.log)
	return t
}

// resolveStationID runs the resolution ladder, first match wins:
// the free text is a station id, or a charge-point id whose station
// equivalent applies, or it starts with the operator id in one of the
// known spellings. Everything else stays unresolved.
func (b *Builder) resolveStationID(ss *stationState) (string, bool) {
	if ss.freeText == "" {
		return ss.placeholder, ss.placeholder != ""
	}
	if id, err := oicp.ParseStationID(ss.freeText); err == nil {
		return id.String(), true
	}
	if eid, err := oicp.ParseEvseID(ss.freeText); err == nil {
		if id, err := eid.StationEquivalent(); err == nil {
			return id.String(), true
		}
	}
	if rest, _, ok := oicp.MatchOperatorPrefix(b.operator, ss.freeText); ok {
		if id, ok := oicp.SynthesizeStationID(b.operator, rest); ok {
			return id.String(), true
		}
	}
	return "", false
}
