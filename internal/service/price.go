package service

import "github.com/beatvault/beatvault/models"

// Fixed price per release type. Unknown release types price at zero rather
// than failing the download; the sale is still recorded.
var priceByReleaseType = map[models.ReleaseType]int64{
	models.ReleaseSingle:  20,
	models.ReleaseMixtape: 40,
	models.ReleaseAlbum:   50,
}

// PriceFor returns the fixed price of a release type.
func PriceFor(t models.ReleaseType) int64 {
	return priceByReleaseType[t]
}
