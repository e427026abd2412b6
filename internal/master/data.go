// 画面のプルダウン/datalist用の固定マスタ。DBは持たない。
package master

import "fmt"

// 配車表の車両欄（固定ロスター）。1台につき1日3枠。
var Vehicles = []string{
	"10t①",
	"10t②",
	"10t③",
	"4t①",
	"4t②",
	"ユニック",
	"トレーラー",
}

const SlotsPerVehicle = 3

type PickupLocation struct {
	Name    string `json:"name"`
	Reading string `json:"reading"`
}

var PickupLocations = []PickupLocation{
	{Name: "本社工場", Reading: "ほんしゃこうじょう"},
	{Name: "東港ヤード", Reading: "ひがしこうやーど"},
	{Name: "第二倉庫", Reading: "だいにそうこ"},
	{Name: "西埠頭", Reading: "にしふとう"},
	{Name: "港町センター", Reading: "みなとまちせんたー"},
}

var Destinations = []string{
	"東京",
	"名古屋",
	"大阪",
	"豊橋港",
	"清水港",
}

var CargoTypes = []string{
	"H鋼",
	"鉄筋",
	"スクラップ",
	"コイル",
	"アングル",
}

// TimeOptions: 7:00〜17:00 を10分刻みで生成
func TimeOptions() []string {
	var out []string
	for hour := 7; hour <= 17; hour++ {
		for minute := 0; minute < 60; minute += 10 {
			if hour == 17 && minute > 0 {
				break
			}
			out = append(out, fmt.Sprintf("%d:%02d", hour, minute))
		}
	}
	return out
}
