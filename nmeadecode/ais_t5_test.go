package nmeadecode

import "testing"

func TestDecodeType5StaticAndVoyageData(t *testing.T) {
	sentence := "!AIVDM,1,1,,A,53P80v@2<r8L48?7;<1<D60EQ0hu8E8000000016<PD:85WdN@DSm51DQ0C@00000000000,2*09"
	msg, err := Parse(sentence, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	vsd, ok := msg.(*VesselStaticData)
	if !ok {
		t.Fatalf("got %T, want *VesselStaticData", msg)
	}
	if vsd.MMSI != 235012345 {
		t.Errorf("MMSI = %d, want 235012345", vsd.MMSI)
	}
	if vsd.ImoNumber == nil || *vsd.ImoNumber != 9234567 {
		t.Errorf("ImoNumber = %v, want 9234567", vsd.ImoNumber)
	}
	if vsd.CallSign == nil || *vsd.CallSign != "ABC123" {
		t.Errorf("CallSign = %v, want ABC123", vsd.CallSign)
	}
	if vsd.Name == nil || *vsd.Name != "SEA EXPLORER" {
		t.Errorf("Name = %v, want SEA EXPLORER", vsd.Name)
	}
	if vsd.ShipType != ShipCargo {
		t.Errorf("ShipType = %v, want ShipCargo", vsd.ShipType)
	}
	if vsd.CargoType != CargoUndefined {
		t.Errorf("CargoType = %v, want CargoUndefined", vsd.CargoType)
	}
	if vsd.DimensionToBow == nil || *vsd.DimensionToBow != 100 {
		t.Errorf("DimensionToBow = %v, want 100", vsd.DimensionToBow)
	}
	if vsd.DimensionToStern == nil || *vsd.DimensionToStern != 20 {
		t.Errorf("DimensionToStern = %v, want 20", vsd.DimensionToStern)
	}
	if vsd.Eta == nil || vsd.Eta.Month != 6 || vsd.Eta.Day != 15 || vsd.Eta.Hour != 12 || vsd.Eta.Minute != 30 {
		t.Errorf("Eta = %+v, want 6/15 12:30", vsd.Eta)
	}
	if vsd.Draught10 == nil || *vsd.Draught10 != 65 {
		t.Errorf("Draught10 = %v, want 65", vsd.Draught10)
	}
	if vsd.Destination == nil || *vsd.Destination != "ROTTERDAM" {
		t.Errorf("Destination = %v, want ROTTERDAM", vsd.Destination)
	}
}
