package essence

// Kind identifies an essence type. Values are dense from zero and index the
// registry table directly.
type Kind int

const (
	Unknown Kind = iota
	Picture
	Sound
	Data

	D10_30
	D10_40
	D10_50
	IECDV25
	DVBasedDV25
	DV50
	DV100_1080i
	DV100_720p
	AVCI100_1080i
	AVCI100_1080p
	AVCI100_720p
	AVCI50_1080i
	AVCI50_1080p
	AVCI50_720p
	AVCHigh10IntraUncs
	AVCHigh422IntraUncs
	UncSD
	UncHD1080i
	UncHD1080p
	UncHD720p
	Avid10BitUncSD
	Avid10BitUncHD1080i
	Avid10BitUncHD1080p
	Avid10BitUncHD720p
	AvidAlphaSD
	AvidAlphaHD1080i
	AvidAlphaHD1080p
	AvidAlphaHD720p
	MPEG2LG422PHL1080i
	MPEG2LG422PHL1080p
	MPEG2LG422PHL720p
	MPEG2LGMPHL1920_1080i
	MPEG2LGMPHL1920_1080p
	MPEG2LGMPHL1440_1080i
	MPEG2LGMPHL1440_1080p
	MPEG2LGMPHL720p
	MPEG2LGMPH14_1080i
	MPEG2LGMPH14_1080p
	VC3_1080p1235
	VC3_1080p1237
	VC3_1080p1238
	VC3_1080i1241
	VC3_1080i1242
	VC3_1080i1243
	VC3_720p1250
	VC3_720p1251
	VC3_720p1252
	VC3_1080p1253
	MJPEG2_1
	MJPEG3_1
	MJPEG10_1
	MJPEG20_1
	MJPEG4_1M
	MJPEG10_1M
	MJPEG15_1S
	WavePCM
	D10AES3PCM
	ANCData
	VBIData

	kindCount
)

type entry struct {
	kind    Kind
	generic Kind
	name    string
	label   string
}

// registry rows must follow the const block above exactly: row i holds kind i.
var registry = [...]entry{
	{Unknown, Unknown, "unknown", "unknown essence type"},
	{Picture, Picture, "picture", "picture essence"},
	{Sound, Sound, "sound", "sound essence"},
	{Data, Data, "data", "data essence"},
	{D10_30, Picture, "d10_30", "D10 30Mbps"},
	{D10_40, Picture, "d10_40", "D10 40Mbps"},
	{D10_50, Picture, "d10_50", "D10 50Mbps"},
	{IECDV25, Picture, "iec_dv25", "IEC DV25"},
	{DVBasedDV25, Picture, "dvbased_dv25", "DV-Based DV25"},
	{DV50, Picture, "dv50", "DV50"},
	{DV100_1080i, Picture, "dv100_1080i", "DV100 1080i"},
	{DV100_720p, Picture, "dv100_720p", "DV100 720p"},
	{AVCI100_1080i, Picture, "avci100_1080i", "AVCI 100Mbps 1080i"},
	{AVCI100_1080p, Picture, "avci100_1080p", "AVCI 100Mbps 1080p"},
	{AVCI100_720p, Picture, "avci100_720p", "AVCI 100Mbps 720p"},
	{AVCI50_1080i, Picture, "avci50_1080i", "AVCI 50Mbps 1080i"},
	{AVCI50_1080p, Picture, "avci50_1080p", "AVCI 50Mbps 1080p"},
	{AVCI50_720p, Picture, "avci50_720p", "AVCI 50Mbps 720p"},
	{AVCHigh10IntraUncs, Picture, "avc_high_10_intra_uncs", "AVC High 10 Intra Unconstrained"},
	{AVCHigh422IntraUncs, Picture, "avc_high_422_intra_uncs", "AVC High 4:2:2 Intra Unconstrained"},
	{UncSD, Picture, "unc_sd", "uncompressed SD"},
	{UncHD1080i, Picture, "unc_hd_1080i", "uncompressed HD 1080i"},
	{UncHD1080p, Picture, "unc_hd_1080p", "uncompressed HD 1080p"},
	{UncHD720p, Picture, "unc_hd_720p", "uncompressed HD 720p"},
	{Avid10BitUncSD, Picture, "avid_10bit_unc_sd", "Avid 10-bit uncompressed SD"},
	{Avid10BitUncHD1080i, Picture, "avid_10bit_unc_hd_1080i", "Avid 10-bit uncompressed HD 1080i"},
	{Avid10BitUncHD1080p, Picture, "avid_10bit_unc_hd_1080p", "Avid 10-bit uncompressed HD 1080p"},
	{Avid10BitUncHD720p, Picture, "avid_10bit_unc_hd_720p", "Avid 10-bit uncompressed HD 720p"},
	{AvidAlphaSD, Picture, "avid_alpha_sd", "Avid uncompressed Alpha SD"},
	{AvidAlphaHD1080i, Picture, "avid_alpha_hd_1080i", "Avid uncompressed Alpha HD 1080i"},
	{AvidAlphaHD1080p, Picture, "avid_alpha_hd_1080p", "Avid uncompressed Alpha HD 1080p"},
	{AvidAlphaHD720p, Picture, "avid_alpha_hd_720p", "Avid uncompressed Alpha HD 720p"},
	{MPEG2LG422PHL1080i, Picture, "mpeg2lg_422p_hl_1080i", "MPEG-2 Long GOP 422P@HL 1080i"},
	{MPEG2LG422PHL1080p, Picture, "mpeg2lg_422p_hl_1080p", "MPEG-2 Long GOP 422P@HL 1080p"},
	{MPEG2LG422PHL720p, Picture, "mpeg2lg_422p_hl_720p", "MPEG-2 Long GOP 422P@HL 720p"},
	{MPEG2LGMPHL1920_1080i, Picture, "mpeg2lg_mp_hl_1920_1080i", "MPEG-2 Long GOP MP@HL 1920x1080i"},
	{MPEG2LGMPHL1920_1080p, Picture, "mpeg2lg_mp_hl_1920_1080p", "MPEG-2 Long GOP MP@HL 1920x1080p"},
	{MPEG2LGMPHL1440_1080i, Picture, "mpeg2lg_mp_hl_1440_1080i", "MPEG-2 Long GOP MP@HL 1440x1080i"},
	{MPEG2LGMPHL1440_1080p, Picture, "mpeg2lg_mp_hl_1440_1080p", "MPEG-2 Long GOP MP@HL 1440x1080p"},
	{MPEG2LGMPHL720p, Picture, "mpeg2lg_mp_hl_720p", "MPEG-2 Long GOP MP@HL 720p"},
	{MPEG2LGMPH14_1080i, Picture, "mpeg2lg_mp_h14_1080i", "MPEG-2 Long GOP MP@H14 1080i"},
	{MPEG2LGMPH14_1080p, Picture, "mpeg2lg_mp_h14_1080p", "MPEG-2 Long GOP MP@H14 1080p"},
	{VC3_1080p1235, Picture, "vc3_1080p_1235", "VC3 1080p 1235"},
	{VC3_1080p1237, Picture, "vc3_1080p_1237", "VC3 1080p 1237"},
	{VC3_1080p1238, Picture, "vc3_1080p_1238", "VC3 1080p 1238"},
	{VC3_1080i1241, Picture, "vc3_1080i_1241", "VC3 1080i 1241"},
	{VC3_1080i1242, Picture, "vc3_1080i_1242", "VC3 1080i 1242"},
	{VC3_1080i1243, Picture, "vc3_1080i_1243", "VC3 1080i 1243"},
	{VC3_720p1250, Picture, "vc3_720p_1250", "VC3 720p 1250"},
	{VC3_720p1251, Picture, "vc3_720p_1251", "VC3 720p 1251"},
	{VC3_720p1252, Picture, "vc3_720p_1252", "VC3 720p 1252"},
	{VC3_1080p1253, Picture, "vc3_1080p_1253", "VC3 1080p 1253"},
	{MJPEG2_1, Picture, "mjpeg_2_1", "MJPEG 2:1"},
	{MJPEG3_1, Picture, "mjpeg_3_1", "MJPEG 3:1"},
	{MJPEG10_1, Picture, "mjpeg_10_1", "MJPEG 10:1"},
	{MJPEG20_1, Picture, "mjpeg_20_1", "MJPEG 20:1"},
	{MJPEG4_1M, Picture, "mjpeg_4_1m", "MJPEG 4:1m"},
	{MJPEG10_1M, Picture, "mjpeg_10_1m", "MJPEG 10:1m"},
	{MJPEG15_1S, Picture, "mjpeg_15_1s", "MJPEG 15:1s"},
	{WavePCM, Sound, "wave_pcm", "WAVE PCM"},
	{D10AES3PCM, Sound, "d10_aes3_pcm", "D10 AES3 PCM"},
	{ANCData, Data, "anc_data", "ANC data"},
	{VBIData, Data, "vbi_data", "VBI data"},
}

func init() {
	if err := Check(); err != nil {
		panic(err)
	}
}
