package buildgraph

import "fmt"

// DefaultStrategy is the discovery strategy used when none is requested.
const DefaultStrategy = "combined"

// DiscoveryStrategy turns a subject file into raw candidate lists, one per
// query issued, preserving each query's output order.
type DiscoveryStrategy interface {
	Name() string
	Discover(subject string, depth int) ([][]string, error)
}

// CombinedStrategy resolves the subject's package and issues one
// deps-of-rdeps query for the whole closure. This is the default.
type CombinedStrategy struct {
	Client *Client
}

func (s *CombinedStrategy) Name() string { return "combined" }

func (s *CombinedStrategy) Discover(subject string, depth int) ([][]string, error) {
	pkg, err := s.Client.ResolvePackage(subject)
	if err != nil {
		return nil, err
	}
	files, err := s.Client.CombinedDependencySources(pkg, subject, depth)
	if err != nil {
		return nil, err
	}
	return [][]string{files}, nil
}

// PivotStrategy first finds the build targets that depend on the subject,
// then queries the closest owning target's source dependencies twice: a
// shallow pass for immediate neighbors, a deep pass for the full closure.
type PivotStrategy struct {
	Client *Client
}

func (s *PivotStrategy) Name() string { return "pivot" }

func (s *PivotStrategy) Discover(subject string, depth int) ([][]string, error) {
	pkg, err := s.Client.ResolvePackage(subject)
	if err != nil {
		return nil, err
	}
	targets, err := s.Client.ReverseDependents(pkg, subject, depth)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("resolving owning target for %s: %w", subject, ErrNoOwningTarget)
	}
	target := targets[0]
	primary, err := s.Client.DependencySources(target, 1)
	if err != nil {
		return nil, err
	}
	secondary, err := s.Client.DependencySources(target, depth)
	if err != nil {
		return nil, err
	}
	return [][]string{primary, secondary}, nil
}

// NewStrategy maps a strategy name onto an implementation.
func NewStrategy(name string, client *Client) (DiscoveryStrategy, error) {
	switch name {
	case "", "combined":
		return &CombinedStrategy{Client: client}, nil
	case "pivot":
		return &PivotStrategy{Client: client}, nil
	default:
		return nil, fmt.Errorf("unknown discovery strategy %q (supported: combined, pivot)", name)
	}
}
