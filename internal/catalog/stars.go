package catalog

import "github.com/litescript/ls-starfield/internal/astro"

// starEntry is a catalog row in equatorial form.
type starEntry struct {
	id     int
	name   string
	raDeg  float64 // J2000
	decDeg float64 // J2000
	distPc float64
	mag    float64
}

// DefaultStars returns the built-in catalog: the Sun, the stellar
// neighbourhood within ~5 pc, and a shell of bright landmark stars.
// Ids are Hipparcos numbers; the Sun is id 0.
// Order is deterministic (catalog order, not distance order).
func DefaultStars() []Star {
	stars := make([]Star, 0, len(defaultEntries))
	for _, e := range defaultEntries {
		stars = append(stars, Star{
			ID:       e.id,
			Position: astro.EquatorialToCartesian(e.raDeg, e.decDeg, e.distPc),
			Mag:      e.mag,
			Name:     e.name,
		})
	}
	return stars
}

// DefaultCatalog returns an in-memory catalog of DefaultStars.
func DefaultCatalog() *Memory {
	return NewMemory(DefaultStars())
}

// defaultEntries: positions from Hipparcos / Gaia DR3, rounded.
// Unnamed stars are kept to exercise label rules.
var defaultEntries = []starEntry{
	{0, "Sol", 0, 0, 0, -26.74},

	// Within 5 pc
	{70890, "Proxima Centauri", 217.429, -62.680, 1.301, 11.13},
	{71683, "Rigil Kentaurus", 219.902, -60.834, 1.339, -0.01},
	{71681, "Toliman", 219.896, -60.838, 1.339, 1.33},
	{87937, "Barnard's Star", 269.452, 4.693, 1.827, 9.51},
	{54035, "Lalande 21185", 165.834, 35.970, 2.547, 7.52},
	{32349, "Sirius", 101.287, -16.716, 2.637, -1.46},
	{92403, "Ross 154", 282.456, -23.836, 2.974, 10.44},
	{16537, "Ran", 53.233, -9.458, 3.212, 3.73},
	{114046, "Lacaille 9352", 346.467, -35.853, 3.296, 7.34},
	{57548, "Ross 128", 176.935, 0.804, 3.375, 11.13},
	{104214, "61 Cygni A", 316.725, 38.750, 3.497, 5.21},
	{104217, "61 Cygni B", 316.730, 38.742, 3.497, 6.03},
	{37279, "Procyon", 114.826, 5.225, 3.510, 0.34},
	{91768, "Struve 2398 A", 280.694, 59.631, 3.520, 8.90},
	{1475, "Groombridge 34", 4.595, 44.023, 3.560, 8.09},
	{108870, "Epsilon Indi", 330.840, -56.786, 3.640, 4.69},
	{8102, "Tau Ceti", 26.017, -15.937, 3.650, 3.50},
	{36208, "Luyten's Star", 111.852, 5.225, 3.790, 9.87},
	{24186, "Kapteyn's Star", 77.919, -45.018, 3.930, 8.85},
	{105090, "Lacaille 8760", 319.315, -38.867, 3.970, 6.67},
	{110893, "Kruger 60", 336.998, 57.696, 4.010, 9.79},
	{439, "", 1.383, -37.351, 4.350, 8.56},
	{80824, "Wolf 1061", 247.575, -12.666, 4.310, 10.07},
	{3829, "Van Maanen's Star", 12.291, 5.389, 4.310, 12.38},
	{85523, "", 262.165, -46.895, 4.550, 9.38},
	{86162, "", 264.110, 68.340, 4.550, 9.17},

	// Bright landmarks
	{97649, "Altair", 297.696, 8.868, 5.13, 0.76},
	{91262, "Vega", 279.235, 38.784, 7.68, 0.03},
	{113368, "Fomalhaut", 344.413, -29.622, 7.70, 1.16},
	{37826, "Pollux", 116.329, 28.026, 10.34, 1.14},
	{57632, "Denebola", 177.265, 14.572, 11.00, 2.13},
	{69673, "Arcturus", 213.915, 19.182, 11.26, -0.05},
	{24608, "Capella", 79.172, 45.998, 13.12, 0.08},
	{105199, "Alderamin", 319.645, 62.586, 15.00, 2.51},
	{36850, "Castor", 113.650, 31.889, 15.60, 1.58},
	{21421, "Aldebaran", 68.980, 16.509, 20.00, 0.85},
	{49669, "Regulus", 152.093, 11.967, 24.30, 1.35},
	{7588, "Achernar", 24.429, -57.237, 42.80, 0.46},
	{65474, "Spica", 201.298, -11.161, 77.00, 0.97},
	{30438, "Canopus", 95.988, -52.696, 95.00, -0.74},
	{11767, "Polaris", 37.954, 89.264, 133.00, 2.02},
	{27989, "Betelgeuse", 88.793, 7.407, 168.00, 0.50},
	{80763, "Antares", 247.352, -26.432, 170.00, 0.96},
	{24436, "Rigel", 78.634, -8.202, 264.00, 0.13},
	{102098, "Deneb", 310.358, 45.280, 802.00, 1.25},
}
