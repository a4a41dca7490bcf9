package nmeadecode

import "testing"

func TestDecodeType19ClassBExtendedPositionReport(t *testing.T) {
	msg, err := Parse("!AIVDM,1,1,,A,C52MJh00=vcKIh5lWb1;0e<P<BV@BL?04N2`00000000?3852RS@,0*23", nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	vdd, ok := msg.(*VesselDynamicData)
	if !ok {
		t.Fatalf("got %T, want *VesselDynamicData", msg)
	}
	if vdd.AisType != AisClassB {
		t.Errorf("AisType = %v, want AisClassB", vdd.AisType)
	}
	if vdd.MMSI != 338123456 {
		t.Errorf("MMSI = %d, want 338123456", vdd.MMSI)
	}
	if vdd.SogKnots == nil || !floatsClose(*vdd.SogKnots, 5.5) {
		t.Errorf("SogKnots = %v, want 5.5", vdd.SogKnots)
	}
	if vdd.Name == nil || *vdd.Name != "FISHING BOAT" {
		t.Errorf("Name = %v, want FISHING BOAT", vdd.Name)
	}
	if vdd.ShipType == nil || *vdd.ShipType != ShipFishing {
		t.Errorf("ShipType = %v, want ShipFishing", vdd.ShipType)
	}
	if vdd.DimensionToBow == nil || *vdd.DimensionToBow != 50 {
		t.Errorf("DimensionToBow = %v, want 50", vdd.DimensionToBow)
	}
	if vdd.DimensionToStern == nil || *vdd.DimensionToStern != 10 {
		t.Errorf("DimensionToStern = %v, want 10", vdd.DimensionToStern)
	}
	if !vdd.RaimFlag {
		t.Error("RaimFlag = false, want true")
	}
	if vdd.Assigned == nil || !*vdd.Assigned {
		t.Error("Assigned = false, want true")
	}
}
