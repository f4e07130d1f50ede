package forecast

import "sort"

// cityLocationNames maps public city identifiers to the CWA native location
// names required by the locationName query parameter. The key set is the
// contract with the frontend; never add entries the frontend does not know
// about.
var cityLocationNames = map[string]string{
	"taipei":        "臺北市",
	"newtaipei":     "新北市",
	"taoyuan":       "桃園市",
	"taichung":      "臺中市",
	"tainan":        "臺南市",
	"kaohsiung":     "高雄市",
	"keelung":       "基隆市",
	"hsinchu":       "新竹市",
	"hsinchucounty": "新竹縣",
	"miaoli":        "苗栗縣",
	"changhua":      "彰化縣",
	"nantou":        "南投縣",
	"yunlin":        "雲林縣",
	"chiayi":        "嘉義市",
	"chiayicounty":  "嘉義縣",
	"pingtung":      "屏東縣",
	"yilan":         "宜蘭縣",
	"hualien":       "花蓮縣",
	"taitung":       "臺東縣",
	"penghu":        "澎湖縣",
	"kinmen":        "金門縣",
	"lienchiang":    "連江縣",
}

// LocationName resolves a lowercase city identifier to its CWA location name.
func LocationName(cityID string) (string, bool) {
	name, ok := cityLocationNames[cityID]
	return name, ok
}

// ValidCityIDs returns every known city identifier in sorted order.
func ValidCityIDs() []string {
	ids := make([]string, 0, len(cityLocationNames))
	for id := range cityLocationNames {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
