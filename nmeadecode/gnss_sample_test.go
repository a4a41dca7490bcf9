package nmeadecode

import (
	"math"
	"testing"
)

func TestDecodeRMC(t *testing.T) {
	msg, err := Parse("$GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W*6A", nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	rmc, ok := msg.(*RMC)
	if !ok {
		t.Fatalf("got %T, want *RMC", msg)
	}
	if !rmc.Active {
		t.Error("Active = false, want true")
	}
	if rmc.Latitude == nil || math.Abs(*rmc.Latitude-48.1173) > 1e-4 {
		t.Errorf("Latitude = %v", rmc.Latitude)
	}
	if rmc.Longitude == nil || math.Abs(*rmc.Longitude-11.516667) > 1e-4 {
		t.Errorf("Longitude = %v", rmc.Longitude)
	}
	if rmc.SpeedKnots == nil || *rmc.SpeedKnots != 22.4 {
		t.Errorf("SpeedKnots = %v", rmc.SpeedKnots)
	}
	if rmc.TrackTrueDegrees == nil || *rmc.TrackTrueDegrees != 84.4 {
		t.Errorf("TrackTrueDegrees = %v", rmc.TrackTrueDegrees)
	}
	if rmc.MagneticVariation == nil || *rmc.MagneticVariation != -3.1 {
		t.Errorf("MagneticVariation = %v", rmc.MagneticVariation)
	}
	if rmc.Time == nil {
		t.Fatal("Time = nil")
	}
	if rmc.Time.Year() != 1994 || rmc.Time.Month() != 3 || rmc.Time.Day() != 23 {
		t.Errorf("Time date = %v", rmc.Time)
	}
	if rmc.Time.Hour() != 12 || rmc.Time.Minute() != 35 || rmc.Time.Second() != 19 {
		t.Errorf("Time clock = %v", rmc.Time)
	}
}

func TestDecodeZDA(t *testing.T) {
	msg, err := Parse("$GPZDA,201530.00,04,07,2002,00,00*60", nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	zda, ok := msg.(*ZDA)
	if !ok {
		t.Fatalf("got %T, want *ZDA", msg)
	}
	if zda.Time == nil {
		t.Fatal("Time = nil")
	}
	if zda.Time.Year() != 2002 || zda.Time.Month() != 7 || zda.Time.Day() != 4 {
		t.Errorf("Time date = %v", zda.Time)
	}
	if zda.Time.Hour() != 20 || zda.Time.Minute() != 15 || zda.Time.Second() != 30 {
		t.Errorf("Time clock = %v", zda.Time)
	}
}

func TestDecodeGSA(t *testing.T) {
	msg, err := Parse("$GPGSA,A,3,04,05,,09,12,,,24,,,,,2.5,1.3,2.1*39", nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	gsa, ok := msg.(*GSA)
	if !ok {
		t.Fatalf("got %T, want *GSA", msg)
	}
	if !gsa.AutoMode {
		t.Error("AutoMode = false, want true")
	}
	if gsa.FixType != 3 {
		t.Errorf("FixType = %d, want 3", gsa.FixType)
	}
	wantPRNs := []int{4, 5, -1, 9, 12, -1, -1, 24, -1, -1, -1, -1}
	for i, want := range wantPRNs {
		got := gsa.SatellitePRNs[i]
		if want == -1 {
			if got != nil {
				t.Errorf("PRN[%d] = %d, want nil", i, *got)
			}
			continue
		}
		if got == nil || *got != want {
			t.Errorf("PRN[%d] = %v, want %d", i, got, want)
		}
	}
	if gsa.PDOP == nil || *gsa.PDOP != 2.5 {
		t.Errorf("PDOP = %v", gsa.PDOP)
	}
	if gsa.HDOP == nil || *gsa.HDOP != 1.3 {
		t.Errorf("HDOP = %v", gsa.HDOP)
	}
	if gsa.VDOP == nil || *gsa.VDOP != 2.1 {
		t.Errorf("VDOP = %v", gsa.VDOP)
	}
}

func TestDecodeVTG(t *testing.T) {
	msg, err := Parse("$GPVTG,054.7,T,034.4,M,005.5,N,010.2,K*48", nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	vtg, ok := msg.(*VTG)
	if !ok {
		t.Fatalf("got %T, want *VTG", msg)
	}
	if vtg.TrackTrue == nil || *vtg.TrackTrue != 54.7 {
		t.Errorf("TrackTrue = %v", vtg.TrackTrue)
	}
	if vtg.TrackMagnetic == nil || *vtg.TrackMagnetic != 34.4 {
		t.Errorf("TrackMagnetic = %v", vtg.TrackMagnetic)
	}
	if vtg.SpeedKnots == nil || *vtg.SpeedKnots != 5.5 {
		t.Errorf("SpeedKnots = %v", vtg.SpeedKnots)
	}
	if vtg.SpeedKmh == nil || *vtg.SpeedKmh != 10.2 {
		t.Errorf("SpeedKmh = %v", vtg.SpeedKmh)
	}
}

func TestDecodeGGASample(t *testing.T) {
	msg, err := Parse("$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47", nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	gga, ok := msg.(*GGA)
	if !ok {
		t.Fatalf("got %T, want *GGA", msg)
	}
	if gga.FixQuality != 1 {
		t.Errorf("FixQuality = %d, want 1", gga.FixQuality)
	}
	if gga.NumSatellites == nil || *gga.NumSatellites != 8 {
		t.Errorf("NumSatellites = %v", gga.NumSatellites)
	}
	if gga.AltitudeMeters == nil || *gga.AltitudeMeters != 545.4 {
		t.Errorf("AltitudeMeters = %v", gga.AltitudeMeters)
	}
	if gga.DGPSStationID != nil {
		t.Errorf("DGPSStationID = %v, want nil", *gga.DGPSStationID)
	}
	if gga.System != SystemGPS {
		t.Errorf("System = %v, want SystemGPS", gga.System)
	}
}
