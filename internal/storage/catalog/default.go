package catalog

import "expoBooths/internal/models"

func booth(id string, size models.Size, pkg models.Package, status models.Status) models.Entry {
	return models.Booth(id, size, pkg, status)
}

func spacer(id string, kind models.SpacerKind) models.Entry {
	return models.Spacer(id, kind)
}

// defaultEntries is the exhibition hall layout: four rows of 3x3 booths,
// two rows of 4x3 booths, the 6x3 gold islands and the 7x3 platinum
// corners, separated by row spacers.
func defaultEntries() []models.Entry {
	return []models.Entry{
		booth("B01", models.Size3x3, models.PackageBasic, models.StatusAvailable),
		booth("B02", models.Size3x3, models.PackageBasic, models.StatusAvailable),
		booth("B03", models.Size3x3, models.PackageBasic, models.StatusSold),
		spacer("spacer1", models.SpacerCell),
		booth("B04", models.Size3x3, models.PackageBasic, models.StatusAvailable),
		booth("B05", models.Size3x3, models.PackageBasic, models.StatusSold),
		booth("B06", models.Size3x3, models.PackageBasic, models.StatusAvailable),
		spacer("spacer2", models.SpacerCell),
		booth("S01", models.Size3x3, models.PackageSilver, models.StatusReserved),
		booth("S02", models.Size3x3, models.PackageSilver, models.StatusAvailable),
		booth("S03", models.Size3x3, models.PackageSilver, models.StatusSold),
		booth("S04", models.Size3x3, models.PackageSilver, models.StatusAvailable),
		booth("B07", models.Size3x3, models.PackageBasic, models.StatusAvailable),
		booth("B08", models.Size3x3, models.PackageBasic, models.StatusReserved),
		booth("B09", models.Size3x3, models.PackageBasic, models.StatusAvailable),
		spacer("spacer3", models.SpacerCell),
		booth("B10", models.Size3x3, models.PackageBasic, models.StatusAvailable),
		booth("B11", models.Size3x3, models.PackageBasic, models.StatusAvailable),
		booth("B12", models.Size3x3, models.PackageBasic, models.StatusAvailable),
		spacer("spacer4", models.SpacerCell),
		booth("S05", models.Size3x3, models.PackageSilver, models.StatusAvailable),
		booth("S06", models.Size3x3, models.PackageSilver, models.StatusAvailable),
		booth("S07", models.Size3x3, models.PackageSilver, models.StatusSold),
		booth("S08", models.Size3x3, models.PackageSilver, models.StatusAvailable),
		booth("B13", models.Size3x3, models.PackageBasic, models.StatusSold),
		booth("B14", models.Size3x3, models.PackageBasic, models.StatusAvailable),
		booth("B15", models.Size3x3, models.PackageBasic, models.StatusAvailable),
		spacer("spacer5", models.SpacerCell),
		booth("B16", models.Size3x3, models.PackageBasic, models.StatusSold),
		booth("B17", models.Size3x3, models.PackageBasic, models.StatusAvailable),
		booth("B18", models.Size3x3, models.PackageBasic, models.StatusAvailable),
		spacer("spacer6", models.SpacerCell),
		booth("S09", models.Size3x3, models.PackageSilver, models.StatusAvailable),
		booth("S10", models.Size3x3, models.PackageSilver, models.StatusReserved),
		booth("S11", models.Size3x3, models.PackageSilver, models.StatusAvailable),
		booth("S12", models.Size3x3, models.PackageSilver, models.StatusAvailable),
		booth("B19", models.Size3x3, models.PackageBasic, models.StatusAvailable),
		booth("B20", models.Size3x3, models.PackageBasic, models.StatusAvailable),
		booth("B21", models.Size3x3, models.PackageBasic, models.StatusSold),
		booth("B22", models.Size3x3, models.PackageBasic, models.StatusAvailable),
		spacer("spacer7", models.SpacerCell),
		booth("B23", models.Size3x3, models.PackageBasic, models.StatusAvailable),
		booth("B24", models.Size3x3, models.PackageBasic, models.StatusReserved),
		booth("B25", models.Size3x3, models.PackageBasic, models.StatusAvailable),
		spacer("spacer8", models.SpacerCell),
		booth("S13", models.Size3x3, models.PackageSilver, models.StatusSold),
		booth("S14", models.Size3x3, models.PackageSilver, models.StatusAvailable),
		booth("S15", models.Size3x3, models.PackageSilver, models.StatusAvailable),
		spacer("midspacer1", models.SpacerRow),
		booth("S20", models.Size4x3, models.PackageSilver, models.StatusAvailable),
		booth("S21", models.Size4x3, models.PackageSilver, models.StatusAvailable),
		spacer("spacer9", models.SpacerCell),
		booth("G01", models.Size4x3, models.PackageGold, models.StatusReserved),
		booth("G02", models.Size4x3, models.PackageGold, models.StatusAvailable),
		booth("G03", models.Size4x3, models.PackageGold, models.StatusSold),
		spacer("spacer10", models.SpacerCell),
		booth("S22", models.Size4x3, models.PackageSilver, models.StatusAvailable),
		booth("S23", models.Size4x3, models.PackageSilver, models.StatusAvailable),
		spacer("spacer11", models.SpacerCell),
		booth("G04", models.Size4x3, models.PackageGold, models.StatusReserved),
		booth("S24", models.Size4x3, models.PackageSilver, models.StatusSold),
		booth("S25", models.Size4x3, models.PackageSilver, models.StatusAvailable),
		spacer("spacer12", models.SpacerCell),
		booth("G05", models.Size4x3, models.PackageGold, models.StatusAvailable),
		booth("G06", models.Size4x3, models.PackageGold, models.StatusAvailable),
		booth("G07", models.Size4x3, models.PackageGold, models.StatusAvailable),
		spacer("spacer13", models.SpacerCell),
		booth("S26", models.Size4x3, models.PackageSilver, models.StatusAvailable),
		booth("S27", models.Size4x3, models.PackageSilver, models.StatusAvailable),
		spacer("spacer14", models.SpacerCell),
		booth("G08", models.Size4x3, models.PackageGold, models.StatusAvailable),
		spacer("midspacer2", models.SpacerRow),
		spacer("bigspacer1", models.SpacerEdge),
		booth("G09", models.Size6x3, models.PackageGold, models.StatusReserved),
		spacer("bigspacer2", models.SpacerAisle),
		booth("G10", models.Size6x3, models.PackageGold, models.StatusSold),
		spacer("bigspacer3", models.SpacerAisle),
		spacer("midspacer3", models.SpacerRow),
		booth("P01", models.Size7x3, models.PackagePlatinum, models.StatusAvailable),
		spacer("bigspacer4", models.SpacerEdge),
		booth("P02", models.Size7x3, models.PackagePlatinum, models.StatusAvailable),
		spacer("bigspacer5", models.SpacerAisle),
		booth("P03", models.Size7x3, models.PackagePlatinum, models.StatusSold),
	}
}

func defaultDetails() map[models.Package]models.PackageDetails {
	return map[models.Package]models.PackageDetails{
		models.PackageBasic: {
			SizeLabel: "3m x 3m",
			Benefits: []string{
				"Standard booth",
				"Website listing",
				"2 exhibitor passes",
			},
		},
		models.PackageSilver: {
			SizeLabel: "3m x 3m or 4m x 3m",
			Benefits: []string{
				"Priority booth location",
				"Logo on website",
				"3 exhibitor passes",
			},
		},
		models.PackageGold: {
			SizeLabel: "4m x 3m or 6m x 3m",
			Benefits: []string{
				"High-traffic booth location",
				"Expo catalog entry",
				"1 speaking slot",
				"4 exhibitor passes",
			},
		},
		models.PackagePlatinum: {
			SizeLabel: "7m x 3m",
			Benefits: []string{
				"Maximum visibility corner booth",
				"Premium furniture",
				"Homepage logo",
				"3 speaking slots",
				"8 exhibitor passes",
				"VIP lounge access",
			},
		},
	}
}
