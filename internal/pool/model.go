package pool

type Person struct {
	Name  string `json:"name"`
	Party string `json:"party"`
	Pool  string `json:"pool"`
}

const (
	Ruling     = "ruling"
	Opposition = "opposition"
	VIP        = "vip"
)

func fromNames(pool, party string, names ...string) []Person {
	out := make([]Person, 0, len(names))
	for _, n := range names {
		out = append(out, Person{Name: n, Party: party, Pool: pool})
	}
	return out
}

// Builtin returns the pools the admin page ships with.
func Builtin() []Person {
	var all []Person
	all = append(all, fromNames(VIP, "대통령", "윤석열")...)
	all = append(all, fromNames(VIP, "영부인", "김건희")...)
	all = append(all, fromNames(Ruling, "국민의힘",
		"한동훈", "오세훈", "홍준표", "안철수", "나경원",
		"원희룡", "추경호", "배현진", "권성동", "장제원",
		"김기현", "윤상현", "김재섭", "조정훈", "인요한",
		"김은혜", "박수영", "성일종", "김웅", "박정훈",
		"이상민", "윤희숙", "김민전", "김용태", "유승민",
	)...)
	all = append(all, fromNames(Opposition, "야권",
		"이재명", "조국", "추미애", "정청래", "박찬대",
		"고민정", "이준석", "천하람", "김남국", "최강욱",
		"김민석", "서영교", "장경태", "박지원", "정동영",
		"박용진", "김동연", "김경수", "임종석", "우상호",
		"이낙연", "김두관", "양문석", "김준혁", "이언주",
	)...)
	return all
}

// Kinds lists the distinct pool names in first-seen order.
func Kinds(people []Person) []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range people {
		if !seen[p.Pool] {
			seen[p.Pool] = true
			out = append(out, p.Pool)
		}
	}
	return out
}
