package nmeadecode

import "testing"

func TestNewShipType(t *testing.T) {
	cases := []struct {
		raw  uint8
		want ShipType
	}{
		{0, ShipNotAvailable},
		{30, ShipFishing},
		{36, ShipSailing},
		{52, ShipTug},
		{70, ShipCargo},
		{80, ShipTanker},
		{95, ShipOther},
	}
	for _, c := range cases {
		if got := newShipType(c.raw); got != c.want {
			t.Errorf("newShipType(%d) = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestNewCargoType(t *testing.T) {
	cases := []struct {
		raw  uint8
		want CargoType
	}{
		{70, CargoUndefined},
		{71, CargoHazardousCategoryA},
		{72, CargoHazardousCategoryB},
		{84, CargoHazardousCategoryD},
	}
	for _, c := range cases {
		if got := newCargoType(c.raw); got != c.want {
			t.Errorf("newCargoType(%d) = %v, want %v", c.raw, got, c.want)
		}
	}
}
