package nmeadecode

// decodeT15 builds an Interrogation from an interrogation message (type 15).
// The payload's exact bit length picks case 1 or 2; case 3 vs 4 (both 160
// bits) are told apart by whether the second request slot for the first
// station (bits 90..107) is entirely zero.
func decodeT15(bv *bitVec, station Station) (ParsedMessage, error) {
	if !bv.sufficientBits(88) {
		return nil, newErr(ErrInvalidSentence, "type 15 payload too short: %d bits", bv.Len())
	}
	msgType := int(bv.pickUint(0, 6))
	if msgType != 15 {
		return nil, newErr(ErrInvalidSentence, "message type %d is not 15", msgType)
	}

	sourceMMSI := uint32(bv.pickUint(8, 30))
	station1 := InterrogationStation{
		MMSI: uint32(bv.pickUint(40, 30)),
		Requests: []InterrogationRequest{
			{MessageType: uint8(bv.pickUint(70, 6)), SlotOffset: uint16(bv.pickUint(76, 12))},
		},
	}

	n := bv.Len()
	switch {
	case n < 110:
		return &Interrogation{
			Station:    station,
			SourceMMSI: sourceMMSI,
			Case:       InterrogationCase1,
			Stations:   []InterrogationStation{station1},
		}, nil

	case n < 160:
		station1.Requests = append(station1.Requests, InterrogationRequest{
			MessageType: uint8(bv.pickUint(90, 6)),
			SlotOffset:  uint16(bv.pickUint(96, 12)),
		})
		return &Interrogation{
			Station:    station,
			SourceMMSI: sourceMMSI,
			Case:       InterrogationCase2,
			Stations:   []InterrogationStation{station1},
		}, nil

	default:
		secondSlotZero := bv.pickUint(90, 18) == 0
		station2 := InterrogationStation{
			MMSI: uint32(bv.pickUint(110, 30)),
			Requests: []InterrogationRequest{
				{MessageType: uint8(bv.pickUint(140, 6)), SlotOffset: uint16(bv.pickUint(146, 12))},
			},
		}
		if secondSlotZero {
			return &Interrogation{
				Station:    station,
				SourceMMSI: sourceMMSI,
				Case:       InterrogationCase4,
				Stations:   []InterrogationStation{station1, station2},
			}, nil
		}
		station1.Requests = append(station1.Requests, InterrogationRequest{
			MessageType: uint8(bv.pickUint(90, 6)),
			SlotOffset:  uint16(bv.pickUint(96, 12)),
		})
		return &Interrogation{
			Station:    station,
			SourceMMSI: sourceMMSI,
			Case:       InterrogationCase3,
			Stations:   []InterrogationStation{station1, station2},
		}, nil
	}
}
