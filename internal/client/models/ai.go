package models

// Sections of a crop-info answer, in display order.
const (
	CropInfoType           = "TYPE"
	CropInfoScientificName = "SCIENTIFIC_NAME"
	CropInfoCalories       = "CALORIES"
	CropInfoNutrition      = "NUTRITION"
	CropInfoSeason         = "SEASON"
	CropInfoUses           = "USES"
	CropInfoHealthBenefits = "HEALTH_BENEFITS"
	CropInfoStorage        = "STORAGE"
	CropInfoFunFact        = "FUN_FACT"
)

var CropInfoSections = []string{
	CropInfoType, CropInfoScientificName, CropInfoCalories, CropInfoNutrition, CropInfoSeason,
	CropInfoUses, CropInfoHealthBenefits, CropInfoStorage, CropInfoFunFact,
}

// CropInfo is the crop assistant's answer. When the model is unreachable the
// backend sets Success to false and still returns generic Data, with Message
// explaining why.
type CropInfo struct {
	CropName string            `json:"cropName"`
	Data     map[string]string `json:"data"`
	Raw      string            `json:"raw,omitempty"`
	Success  bool              `json:"success"`
	Message  string            `json:"message,omitempty"`
}
