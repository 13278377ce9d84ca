package colorspace

// Fixed-point constants for the lossy transforms. All matrices are Q16;
// linear light is carried at 12-bit precision.

// srgbToLinear12 maps an sRGB byte to 12-bit linear light.
var srgbToLinear12 = [256]int32{
	0, 1, 2, 4, 5, 6, 7, 9, 10, 11,
	12, 14, 15, 16, 18, 20, 21, 23, 25, 27,
	29, 31, 33, 35, 37, 40, 42, 45, 48, 50,
	53, 56, 59, 62, 66, 69, 72, 76, 79, 83,
	87, 91, 95, 99, 103, 107, 112, 116, 121, 126,
	131, 136, 141, 146, 151, 156, 162, 168, 173, 179,
	185, 191, 197, 204, 210, 216, 223, 230, 237, 244,
	251, 258, 265, 273, 280, 288, 296, 304, 312, 320,
	329, 337, 346, 354, 363, 372, 381, 390, 400, 409,
	419, 428, 438, 448, 458, 469, 479, 490, 500, 511,
	522, 533, 544, 555, 567, 578, 590, 602, 614, 626,
	639, 651, 664, 676, 689, 702, 715, 728, 742, 755,
	769, 783, 797, 811, 825, 840, 854, 869, 884, 899,
	914, 929, 945, 960, 976, 992, 1008, 1024, 1041, 1057,
	1074, 1091, 1108, 1125, 1142, 1159, 1177, 1195, 1213, 1231,
	1249, 1267, 1286, 1304, 1323, 1342, 1361, 1381, 1400, 1420,
	1440, 1459, 1480, 1500, 1520, 1541, 1562, 1582, 1603, 1625,
	1646, 1668, 1689, 1711, 1733, 1755, 1778, 1800, 1823, 1846,
	1869, 1892, 1916, 1939, 1963, 1987, 2011, 2035, 2059, 2084,
	2109, 2133, 2159, 2184, 2209, 2235, 2260, 2286, 2312, 2339,
	2365, 2392, 2419, 2446, 2473, 2500, 2527, 2555, 2583, 2611,
	2639, 2668, 2696, 2725, 2754, 2783, 2812, 2841, 2871, 2901,
	2931, 2961, 2991, 3022, 3052, 3083, 3114, 3146, 3177, 3209,
	3240, 3272, 3304, 3337, 3369, 3402, 3435, 3468, 3501, 3535,
	3568, 3602, 3636, 3670, 3705, 3739, 3774, 3809, 3844, 3879,
	3915, 3950, 3986, 4022, 4059, 4095,
}

// Oklab reference matrices in Q16: linear sRGB to LMS, nonlinear LMS to Lab,
// and their inverses.
var oklabM1 = [3][3]int64{
	{27015, 35149, 3372},
	{13887, 44610, 7038},
	{5787, 18463, 41286},
}

var oklabM2 = [3][3]int64{
	{13792, 52011, -267},
	{129630, -159160, 29530},
	{1698, 51300, -52997},
}

var oklabM2Inv = [3][3]int64{
	{65536, 25974, 14143},
	{65536, -6918, -4185},
	{65536, -5864, -84639},
}

var oklabM1Inv = [3][3]int64{
	{267173, -216774, 15137},
	{-83128, 171033, -22369},
	{-275, -46099, 111910},
}

// Cube-root seed polynomial c0 + c1*m + c2*m^2 + c3*m^3 over m in [1,8), Q16.
const (
	cbrtSeedC0 = 47275
	cbrtSeedC1 = 21559
	cbrtSeedC2 = -2277
	cbrtSeedC3 = 112
)

// logLuma maps a byte to the log-domain value round(27.625*log2(1+c)).
// White lands exactly on the luma level offset.
var logLuma = [256]int32{
	0, 28, 44, 55, 64, 71, 78, 83, 88, 92, 96, 99, 102, 105,
	108, 110, 113, 115, 117, 119, 121, 123, 125, 127, 128, 130, 131, 133,
	134, 136, 137, 138, 139, 141, 142, 143, 144, 145, 146, 147, 148, 149,
	150, 151, 152, 153, 153, 154, 155, 156, 157, 157, 158, 159, 160, 160,
	161, 162, 163, 163, 164, 164, 165, 166, 166, 167, 168, 168, 169, 169,
	170, 170, 171, 172, 172, 173, 173, 174, 174, 175, 175, 176, 176, 177,
	177, 178, 178, 178, 179, 179, 180, 180, 181, 181, 181, 182, 182, 183,
	183, 184, 184, 184, 185, 185, 185, 186, 186, 187, 187, 187, 188, 188,
	188, 189, 189, 189, 190, 190, 190, 191, 191, 191, 192, 192, 192, 193,
	193, 193, 194, 194, 194, 195, 195, 195, 195, 196, 196, 196, 197, 197,
	197, 198, 198, 198, 198, 199, 199, 199, 199, 200, 200, 200, 200, 201,
	201, 201, 202, 202, 202, 202, 203, 203, 203, 203, 203, 204, 204, 204,
	204, 205, 205, 205, 205, 206, 206, 206, 206, 207, 207, 207, 207, 207,
	208, 208, 208, 208, 208, 209, 209, 209, 209, 210, 210, 210, 210, 210,
	211, 211, 211, 211, 211, 212, 212, 212, 212, 212, 213, 213, 213, 213,
	213, 213, 214, 214, 214, 214, 214, 215, 215, 215, 215, 215, 215, 216,
	216, 216, 216, 216, 217, 217, 217, 217, 217, 217, 218, 218, 218, 218,
	218, 218, 219, 219, 219, 219, 219, 219, 220, 220, 220, 220, 220, 220,
	221, 221, 221, 221,
}

// logl1 luma weights in Q16 (Rec.601) and the luma level offset.
const (
	logWR = 19595
	logWG = 38470
	logWB = 7471

	logLumaOffset = 221
)
