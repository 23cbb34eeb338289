package lifecycle

import (
	"fmt"

	"lifecycle/internal/pkg/errs"
)

// ProjectType classifies the kind of work an order covers. The empty value
// means the operator has not classified the order.
type ProjectType string

const (
	ProjectTypeNone               ProjectType = ""
	ProjectTypeSupply             ProjectType = "supply"
	ProjectTypeSupplyInstallation ProjectType = "supply_installation"
	ProjectTypeInstallation       ProjectType = "installation"
	ProjectTypeService            ProjectType = "service"
	ProjectTypeAMC                ProjectType = "amc"
)

// ParseProjectType validates a project type label. The empty label is valid.
func ParseProjectType(label string) (ProjectType, error) {
	pt := ProjectType(label)
	if err := pt.Validate(); err != nil {
		return ProjectTypeNone, err
	}
	return pt, nil
}

// Validate reports whether pt is a known project type or empty.
func (pt ProjectType) Validate() error {
	switch pt {
	case ProjectTypeNone, ProjectTypeSupply, ProjectTypeSupplyInstallation,
		ProjectTypeInstallation, ProjectTypeService, ProjectTypeAMC:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("project type", fmt.Errorf("%q is not a known project type", string(pt)))
	}
}
