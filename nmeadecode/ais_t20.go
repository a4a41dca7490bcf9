package nmeadecode

// decodeT20 builds a DataLinkManagement from a data link management message
// (type 20), which packs up to four reservation blocks; the payload's
// length tells how many are present.
func decodeT20(bv *bitVec, station Station) (ParsedMessage, error) {
	if !bv.sufficientBits(72) {
		return nil, newErr(ErrInvalidSentence, "type 20 payload too short: %d bits", bv.Len())
	}
	msgType := int(bv.pickUint(0, 6))
	if msgType != 20 {
		return nil, newErr(ErrInvalidSentence, "message type %d is not 20", msgType)
	}

	sourceMMSI := uint32(bv.pickUint(8, 30))
	var blocks []DataLinkManagementBlock

	for i := 0; i < 4; i++ {
		base := 40 + i*30
		if !bv.sufficientBits(base + 30) {
			break
		}
		blocks = append(blocks, DataLinkManagementBlock{
			Offset:    uint16(bv.pickUint(base, 12)),
			Slots:     uint8(bv.pickUint(base+12, 4)),
			Timeout:   uint8(bv.pickUint(base+16, 3)),
			Increment: uint16(bv.pickUint(base+19, 11)),
		})
	}

	return &DataLinkManagement{
		Station:    station,
		SourceMMSI: sourceMMSI,
		Blocks:     blocks,
	}, nil
}
