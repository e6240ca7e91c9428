package fess

import "github.com/bertbaron/fess-sokoban/level"

// FeatureVector is the 4-tuple (F1, F2, F3, F4) a state projects to
// (§3). It is the key of the feature space index.
type FeatureVector struct {
	F1, F2, F3, F4 int
}

// Advisors bundles the four feature-space projections (§4.D–§4.G)
// built once per Level. Each advisor exposes project(state) -> int
// (design note: "dynamic dispatch across advisors" — a fixed,
// non-extensible quartet rather than an open plugin interface).
type Advisors struct {
	Packing      *PackingAdvisor
	Connectivity *ConnectivityAdvisor
	Room         *RoomAdvisor
	OutOfPlan    *OutOfPlanAdvisor
}

// NewAdvisors builds all four advisors for lvl. It fails only if the
// packing plan's retrograde analysis cannot account for every target
// (§4.D Failure, §7 construction error "unsolvable_plan").
func NewAdvisors(lvl *level.Level) (*Advisors, error) {
	packing, err := NewPackingAdvisor(lvl)
	if err != nil {
		return nil, err
	}
	return &Advisors{
		Packing:      packing,
		Connectivity: NewConnectivityAdvisor(lvl),
		Room:         NewRoomAdvisor(lvl),
		OutOfPlan:    NewOutOfPlanAdvisor(packing),
	}, nil
}

// Project computes the full feature vector of s.
func (a *Advisors) Project(s State) FeatureVector {
	return FeatureVector{
		F1: a.Packing.Project(s),
		F2: a.Connectivity.Project(s),
		F3: a.Room.Project(s),
		F4: a.OutOfPlan.Project(s),
	}
}
