package nmeadecode

import "time"

// GGA is a Global Positioning System Fix Data sentence.
type GGA struct {
	System          System
	Time            *time.Time
	Latitude        *float64
	Longitude       *float64
	FixQuality      int
	NumSatellites   *int
	HDOP            *float64
	AltitudeMeters  *float64
	GeoidSepMeters  *float64
	DGPSAgeSeconds  *float64
	DGPSStationID   *string
}

func (GGA) Kind() MessageKind { return KindGGA }

// RMC is a Recommended Minimum Navigation Information sentence.
type RMC struct {
	System             System
	Time               *time.Time
	Active             bool
	Latitude           *float64
	Longitude          *float64
	SpeedKnots         *float64
	TrackTrueDegrees   *float64
	MagneticVariation  *float64
	FAAMode            *string
}

func (RMC) Kind() MessageKind { return KindRMC }

// GSA is a GPS DOP and Active Satellites sentence.
type GSA struct {
	System     System
	AutoMode   bool
	FixType    int
	SatellitePRNs [12]*int
	PDOP       *float64
	HDOP       *float64
	VDOP       *float64
}

func (GSA) Kind() MessageKind { return KindGSA }

// GsvSatellite is one satellite entry within a GSV sentence.
type GsvSatellite struct {
	PRN       int
	Elevation *int
	Azimuth   *int
	SNR       *int
}

// GSV is a GPS Satellites in View sentence.
type GSV struct {
	System           System
	TotalMessages    int
	MessageNumber    int
	SatellitesInView int
	Satellites       []GsvSatellite
}

func (GSV) Kind() MessageKind { return KindGSV }

// VTG is a Track Made Good and Ground Speed sentence.
type VTG struct {
	System          System
	TrackTrue       *float64
	TrackMagnetic   *float64
	SpeedKnots      *float64
	SpeedKmh        *float64
	FAAMode         *string
}

func (VTG) Kind() MessageKind { return KindVTG }

// GLL is a Geographic Position sentence.
type GLL struct {
	System    System
	Latitude  *float64
	Longitude *float64
	Time      *time.Time
	Active    bool
	FAAMode   *string
}

func (GLL) Kind() MessageKind { return KindGLL }

// GNS is a GNSS Fix Data sentence (multi-constellation equivalent of GGA).
type GNS struct {
	System         System
	Time           *time.Time
	Latitude       *float64
	Longitude      *float64
	Mode           string
	NumSatellites  *int
	HDOP           *float64
	AltitudeMeters *float64
	GeoidSepMeters *float64
	DGPSAgeSeconds *float64
	DGPSStationID  *string
}

func (GNS) Kind() MessageKind { return KindGNS }

// HDT is a Heading, True sentence.
type HDT struct {
	HeadingTrue *float64
}

func (HDT) Kind() MessageKind { return KindHDT }

// VHW is a Water Speed and Heading sentence.
type VHW struct {
	HeadingTrue     *float64
	HeadingMagnetic *float64
	SpeedKnots      *float64
	SpeedKmh        *float64
}

func (VHW) Kind() MessageKind { return KindVHW }

// MWV is a Wind Speed and Angle sentence.
type MWV struct {
	WindAngle    *float64
	Reference    string
	WindSpeed    *float64
	SpeedUnit    string
	DataValid    bool
}

func (MWV) Kind() MessageKind { return KindMWV }

// MTW is a Water Temperature sentence.
type MTW struct {
	TemperatureCelsius *float64
}

func (MTW) Kind() MessageKind { return KindMTW }

// DBS is a Depth Below Surface sentence.
type DBS struct {
	DepthFeet    *float64
	DepthMeters  *float64
	DepthFathoms *float64
}

func (DBS) Kind() MessageKind { return KindDBS }

// DPT is a Depth sentence with transducer offset.
type DPT struct {
	DepthMeters *float64
	Offset      *float64
	MaxRange    *float64
}

func (DPT) Kind() MessageKind { return KindDPT }

// ALM is a GPS Almanac Data sentence.
type ALM struct {
	TotalMessages            int
	MessageNumber            int
	SatellitePRN             int
	GpsWeek                  *int
	SVHealth                 *string
	Eccentricity             *string
	AlmanacReferenceTime     *string
	InclinationAngle         *string
	RateOfRightAscension     *string
	RootSemiMajorAxis        *string
	ArgumentOfPerigee        *string
	LongitudeOfAscensionNode *string
	MeanAnomaly              *string
	Af0                      *string
	Af1                      *string
}

func (ALM) Kind() MessageKind { return KindALM }

// DTM is a Datum Reference sentence.
type DTM struct {
	LocalDatum     string
	LocalDatumSub  string
	LatOffset      *float64
	LonOffset      *float64
	AltOffset      *float64
	ReferenceDatum string
}

func (DTM) Kind() MessageKind { return KindDTM }

// MSS is a Beacon Receiver Status sentence.
type MSS struct {
	SignalStrength *float64
	SignalToNoise  *float64
	FrequencyKHz   *float64
	BeaconBitRate  *float64
}

func (MSS) Kind() MessageKind { return KindMSS }

// STN is a Multiple Data ID sentence.
type STN struct {
	TalkerIDNumber *int
}

func (STN) Kind() MessageKind { return KindSTN }

// VBW is a Dual Ground/Water Speed sentence.
type VBW struct {
	LongitudinalWaterSpeed  *float64
	TransverseWaterSpeed    *float64
	WaterSpeedValid         bool
	LongitudinalGroundSpeed *float64
	TransverseGroundSpeed   *float64
	GroundSpeedValid        bool
}

func (VBW) Kind() MessageKind { return KindVBW }

// ZDA is a Time and Date sentence.
type ZDA struct {
	Time           *time.Time
	LocalZoneHours *int
	LocalZoneMins  *int
}

func (ZDA) Kind() MessageKind { return KindZDA }
