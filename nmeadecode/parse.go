package nmeadecode

// Parse decodes one raw NMEA 0183 line. For AIS VDM/VDO lines, asm buffers
// multi-fragment payloads across calls; pass the same Assembler for every
// line from one source. A nil asm is fine for single-fragment-only use;
// Parse allocates a throwaway one internally in that case, so no per-call
// assembly state survives across lines.
func Parse(line string, asm *Assembler) (ParsedMessage, error) {
	env, err := tokenize(line)
	if err != nil {
		return nil, err
	}

	switch env.Starter {
	case StarterAIS:
		return parseAis(env, asm)
	default:
		return parseGnss(env)
	}
}

func parseAis(env Envelope, asm *Assembler) (ParsedMessage, error) {
	if env.SentenceID != "VDM" && env.SentenceID != "VDO" {
		return Unsupported{SentenceOrType: env.Talker + env.SentenceID}, nil
	}

	frag, err := parseFragment(env.Fields)
	if err != nil {
		return nil, err
	}

	if asm == nil {
		asm = NewAssembler()
	}

	result, err := asm.absorb(frag)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return Incomplete{}, nil
	}

	msg, err := decodeAisPayload(result.bv, env.Talker)
	if err != nil {
		return nil, err
	}

	if vdd, ok := msg.(*VesselDynamicData); ok {
		vdd.OwnVessel = env.SentenceID == "VDO"
	}
	if vsd, ok := msg.(*VesselStaticData); ok {
		vsd.OwnVessel = env.SentenceID == "VDO"
	}
	if bsr, ok := msg.(*BaseStationReport); ok {
		bsr.OwnVessel = env.SentenceID == "VDO"
	}
	if bm, ok := msg.(*BinaryMessage); ok {
		bm.OwnVessel = env.SentenceID == "VDO"
	}
	if ack, ok := msg.(*Acknowledge); ok {
		ack.OwnVessel = env.SentenceID == "VDO"
	}
	if as, ok := msg.(*AddressedSafety); ok {
		as.OwnVessel = env.SentenceID == "VDO"
	}
	if sb, ok := msg.(*SafetyBroadcast); ok {
		sb.OwnVessel = env.SentenceID == "VDO"
	}
	if dg, ok := msg.(*DGNSSBroadcast); ok {
		dg.OwnVessel = env.SentenceID == "VDO"
	}
	if sar, ok := msg.(*StandardSARAircraft); ok {
		sar.OwnVessel = env.SentenceID == "VDO"
	}
	if ui, ok := msg.(*UTCInquiry); ok {
		ui.OwnVessel = env.SentenceID == "VDO"
	}
	if ssb, ok := msg.(*SingleSlotBinary); ok {
		ssb.OwnVessel = env.SentenceID == "VDO"
	}
	if msb, ok := msg.(*MultipleSlotBinary); ok {
		msb.OwnVessel = env.SentenceID == "VDO"
	}

	return msg, nil
}

func parseGnss(env Envelope) (ParsedMessage, error) {
	switch env.SentenceID {
	case "GGA":
		return decodeGGA(env)
	case "RMC":
		return decodeRMC(env)
	case "GSA":
		return decodeGSA(env)
	case "GSV":
		return decodeGSV(env)
	case "VTG":
		return decodeVTG(env)
	case "GLL":
		return decodeGLL(env)
	case "GNS":
		return decodeGNS(env)
	case "HDT":
		return decodeHDT(env)
	case "VHW":
		return decodeVHW(env)
	case "MWV":
		return decodeMWV(env)
	case "MTW":
		return decodeMTW(env)
	case "DBS":
		return decodeDBS(env)
	case "DPT":
		return decodeDPT(env)
	case "ALM":
		return decodeALM(env)
	case "DTM":
		return decodeDTM(env)
	case "MSS":
		return decodeMSS(env)
	case "STN":
		return decodeSTN(env)
	case "VBW":
		return decodeVBW(env)
	case "ZDA":
		return decodeZDA(env)
	default:
		return Unsupported{SentenceOrType: env.Talker + env.SentenceID}, nil
	}
}
