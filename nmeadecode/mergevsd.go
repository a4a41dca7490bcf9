package nmeadecode

// MergeStaticData combines a type-24 part A and part B VesselStaticData
// decoded independently by Parse into a single record. Order doesn't
// matter; callers typically cache whichever part arrives first keyed by
// MMSI and merge once the other shows up.
func MergeStaticData(a, b *VesselStaticData) (*VesselStaticData, error) {
	if a == nil || b == nil {
		return nil, newErr(ErrInvalidSentence, "MergeStaticData requires both parts")
	}
	if a.MMSI != b.MMSI {
		return nil, newErr(ErrInvalidSentence, "mismatched MMSI %d vs %d", a.MMSI, b.MMSI)
	}

	partA, partB := a, b
	if a.Part24 == "B" {
		partA, partB = b, a
	}
	if partA.Part24 != "A" || partB.Part24 != "B" {
		return nil, newErr(ErrInvalidSentence, "need one part A and one part B")
	}

	merged := *partB
	merged.Name = partA.Name
	merged.Part24 = ""
	return &merged, nil
}
