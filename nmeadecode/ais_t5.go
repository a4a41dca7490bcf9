package nmeadecode

// decodeT5 builds a VesselStaticData from a static and voyage-related data
// message (type 5).
func decodeT5(bv *bitVec, station Station) (ParsedMessage, error) {
	if !bv.sufficientBits(424) {
		return nil, newErr(ErrInvalidSentence, "type 5 payload too short: %d bits", bv.Len())
	}

	msgType := int(bv.pickUint(0, 6))
	if msgType != 5 {
		return nil, newErr(ErrInvalidSentence, "message type %d is not 5", msgType)
	}

	mmsi := uint32(bv.pickUint(8, 30))
	aisVersion := uint8(bv.pickUint(38, 2))

	imo := uint32(bv.pickUint(40, 30))
	var imoPtr *uint32
	if imo != 0 {
		imoPtr = &imo
	}

	callSign := bv.pickString(70, 7)
	var callSignPtr *string
	if callSign != "" {
		callSignPtr = &callSign
	}

	name := bv.pickString(112, 20)
	var namePtr *string
	if name != "" {
		namePtr = &name
	}

	shipTypeRaw := uint8(bv.pickUint(232, 8))
	shipType := newShipType(shipTypeRaw)
	cargoType := newCargoType(shipTypeRaw)

	dimBow := uint16(bv.pickUint(240, 9))
	dimStern := uint16(bv.pickUint(249, 9))
	dimPort := uint16(bv.pickUint(258, 6))
	dimStarboard := uint16(bv.pickUint(264, 6))

	fixRaw := uint8(bv.pickUint(270, 4))
	var fixPtr *PositionFixType
	if fixRaw != 0 {
		fix := newPositionFixType(fixRaw)
		fixPtr = &fix
	}

	eta := &Eta{
		Month:  int(bv.pickUint(274, 4)),
		Day:    int(bv.pickUint(278, 5)),
		Hour:   int(bv.pickUint(283, 5)),
		Minute: int(bv.pickUint(288, 6)),
	}

	draughtRaw := uint8(bv.pickUint(294, 8))
	var draughtPtr *uint8
	if draughtRaw != 0 {
		draughtPtr = &draughtRaw
	}

	destination := bv.pickString(302, 20)
	var destPtr *string
	if destination != "" {
		destPtr = &destination
	}

	return &VesselStaticData{
		AisType:               AisClassA,
		MMSI:                  mmsi,
		AisVersionIndicator:   aisVersion,
		ImoNumber:             imoPtr,
		CallSign:              callSignPtr,
		Name:                  namePtr,
		ShipType:              shipType,
		CargoType:             cargoType,
		DimensionToBow:        &dimBow,
		DimensionToStern:      &dimStern,
		DimensionToPort:       &dimPort,
		DimensionToStarboard:  &dimStarboard,
		PositionFixType:       fixPtr,
		Eta:                   eta,
		Draught10:             draughtPtr,
		Destination:           destPtr,
	}, nil
}
