package codec

// defaultCodec describes one compiled-in codec seeded on first use.
// Command lists are in preference order; all default commands share
// priority 0, so registration order decides the tie-break.
type defaultCodec struct {
	name        string
	description string
	extensions  []string
	encoders    []string
	decoders    []string
}

// Changing this table after a codec has been seeded does not update
// the stored codec: seeding is one-shot per codec name, not a sync.
var defaultCodecs = []defaultCodec{
	{
		name:        "mp3",
		description: "MPEG-1 or MPEG-2 Audio Layer III",
		extensions:  []string{"mp3"},
		encoders: []string{
			"lame --quiet -b 320 --vbr-new -ms --replaygain-accurate FILE OUTFILE",
		},
		decoders: []string{
			"lame --quiet --decode FILE OUTFILE",
		},
	},
	{
		name:        "aac",
		description: "Advanced Audio Coding",
		extensions:  []string{"aac", "m4a", "mp4"},
		encoders: []string{
			"neroAacEnc -if FILE -of OUTFILE -br 256000 -2pass",
			"afconvert -b 256000 -v -f m4af -d aac FILE OUTFILE",
		},
		decoders: []string{
			"neroAacDec -if OUTFILE -of FILE",
			"faad -q -o OUTFILE FILE -b1",
		},
	},
	{
		name:        "vorbis",
		description: "Ogg Vorbis",
		extensions:  []string{"vorbis", "ogg"},
		encoders: []string{
			"oggenc --quiet -q 7 -o OUTFILE FILE",
		},
		decoders: []string{
			"oggdec --quiet -o OUTFILE FILE",
		},
	},
	{
		name:        "flac",
		description: "Free Lossless Audio Codec",
		extensions:  []string{"flac"},
		encoders: []string{
			"flac -f --silent --verify --replay-gain -o OUTFILE FILE",
		},
		decoders: []string{
			"flac -f --silent --decode -o OUTFILE FILE",
		},
	},
	{
		name:        "wavpack",
		description: "WavPack Lossless Audio Codec",
		extensions:  []string{"wv", "wavpack"},
		encoders: []string{
			"wavpack -yhx FILE -o OUTFILE",
		},
		decoders: []string{
			"wvunpack -yq FILE -o OUTFILE",
		},
	},
	{
		name:        "caf",
		description: "CoreAudio Format audio",
		extensions:  []string{"caf"},
		encoders: []string{
			"afconvert -f caff -d LEI16 FILE OUTFILE",
		},
		decoders: []string{
			"afconvert -f WAVE -d LEI16 FILE OUTFILE",
		},
	},
	{
		name:        "aif",
		description: "AIFF audio",
		extensions:  []string{"aif", "aiff"},
		encoders: []string{
			"afconvert -f AIFF -d BEI16 FILE OUTFILE",
		},
		decoders: []string{
			"afconvert -f WAVE -d LEI16 FILE OUTFILE",
		},
	},
	{
		// Raw audio container, nothing to transcode with
		name:        "wav",
		description: "RIFF Wave Audio",
		extensions:  []string{"wav"},
	},
}
