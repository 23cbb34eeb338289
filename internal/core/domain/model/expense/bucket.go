package expense

import (
	"fmt"
	"slices"

	"lifecycle/internal/pkg/errs"
)

// Bucket is the budget line a category is charged against.
type Bucket int

const (
	UnknownBucket Bucket = iota
	PurchaseBucket
	ExecutionBucket
)

func (b Bucket) String() string {
	switch b {
	case PurchaseBucket:
		return "purchase"
	case ExecutionBucket:
		return "execution"
	default:
		return "unknown"
	}
}

// BucketMapping assigns every category to exactly one bucket. Mappings are
// versioned constants; add a new version instead of editing an old one.
type BucketMapping struct {
	version string
	buckets map[Category]Bucket
}

// BucketMappingV1 charges material purchases and equipment rental to the
// purchase budget and everything else to the execution budget.
var BucketMappingV1 = BucketMapping{
	version: "v1",
	buckets: map[Category]Bucket{
		MaterialPurchase: PurchaseBucket,
		EquipmentRental:  PurchaseBucket,
		Labor:            ExecutionBucket,
		Transport:        ExecutionBucket,
		SiteExpenses:     ExecutionBucket,
		Subcontractor:    ExecutionBucket,
		Misc:             ExecutionBucket,
	},
}

// DefaultBucketMappingVersion is used when no version is configured.
const DefaultBucketMappingVersion = "v1"

func getBucketMappings() map[string]BucketMapping {
	return map[string]BucketMapping{
		BucketMappingV1.version: BucketMappingV1,
	}
}

// BucketMappingByVersion looks up a mapping by its version label.
func BucketMappingByVersion(version string) (BucketMapping, error) {
	m, ok := getBucketMappings()[version]
	if !ok {
		return BucketMapping{}, errs.NewVersionIsInvalidErrorWithCause(
			"bucket mapping version",
			fmt.Errorf("%q is not a known bucket mapping", version),
		)
	}
	return m, nil
}

// Version returns the label of the mapping, e.g. "v1".
func (m BucketMapping) Version() string {
	return m.version
}

// BucketOf returns the bucket c is charged against, or UnknownBucket.
func (m BucketMapping) BucketOf(c Category) Bucket {
	if b, ok := m.buckets[c]; ok {
		return b
	}
	return UnknownBucket
}

// Categories returns the categories of bucket b in declaration order.
func (m BucketMapping) Categories(b Bucket) []Category {
	var out []Category
	for _, c := range AllCategories() {
		if m.buckets[c] == b {
			out = append(out, c)
		}
	}
	return out
}

// Contains reports whether c belongs to bucket b.
func (m BucketMapping) Contains(b Bucket, c Category) bool {
	return slices.Contains(m.Categories(b), c)
}
