package nmeadecode

import "testing"

func TestTokenizeGNSS(t *testing.T) {
	env, err := tokenize("$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if env.Starter != StarterGNSS {
		t.Fatalf("starter = %v, want StarterGNSS", env.Starter)
	}
	if env.Talker != "GP" || env.SentenceID != "GGA" {
		t.Fatalf("talker/sentence = %q/%q", env.Talker, env.SentenceID)
	}
	if !env.ChecksumSeen {
		t.Fatal("expected checksum to be seen")
	}
	if len(env.Fields) != 14 {
		t.Fatalf("fields = %d, want 14", len(env.Fields))
	}
	if env.Fields[0] != "123519" {
		t.Fatalf("fields[0] = %q", env.Fields[0])
	}
}

func TestTokenizeBadChecksum(t *testing.T) {
	_, err := tokenize("$GPGGA,123519*00")
	de, ok := err.(*DecodeError)
	if !ok || de.Code != ErrChecksumMismatch {
		t.Fatalf("err = %v, want ErrChecksumMismatch", err)
	}
}

func TestTokenizeMissingStarter(t *testing.T) {
	_, err := tokenize("GPGGA,123519")
	de, ok := err.(*DecodeError)
	if !ok || de.Code != ErrInvalidSentence {
		t.Fatalf("err = %v, want ErrInvalidSentence", err)
	}
}

func TestTokenizeAISStarter(t *testing.T) {
	env, err := tokenize("!AIVDM,1,1,,A,15NPOOPP00o?b=bE`UNv4?w428D;,0*24")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if env.Starter != StarterAIS {
		t.Fatalf("starter = %v, want StarterAIS", env.Starter)
	}
	if env.Talker != "AI" || env.SentenceID != "VDM" {
		t.Fatalf("talker/sentence = %q/%q", env.Talker, env.SentenceID)
	}
	if len(env.Fields) != 6 {
		t.Fatalf("fields = %d, want 6", len(env.Fields))
	}
}

func TestXorChecksum(t *testing.T) {
	got := xorChecksum("GPGGA,123519")
	var want byte
	for i := 0; i < len("GPGGA,123519"); i++ {
		want ^= "GPGGA,123519"[i]
	}
	if got != want {
		t.Fatalf("xorChecksum = %02X, want %02X", got, want)
	}
}
