package domain

import "fmt"

// NodeKey identifies one of the fixed recommendation targets.
type NodeKey string

const (
	NodePastExam         NodeKey = "past-exam"
	NodeOverview         NodeKey = "overview"
	NodePractice         NodeKey = "practice"
	NodeFormatDrill      NodeKey = "format-drill"
	NodeProgrammingDrill NodeKey = "programming-drill"
	NodeDone             NodeKey = "done"
)

var Nodes = []NodeKey{
	NodePastExam,
	NodeOverview,
	NodePractice,
	NodeFormatDrill,
	NodeProgrammingDrill,
	NodeDone,
}

func (n NodeKey) Validate() error {
	for _, known := range Nodes {
		if n == known {
			return nil
		}
	}
	return fmt.Errorf("unknown node %q", string(n))
}

// MaterialLink points at an external study material. URL and Image are both
// optional; consumers must handle either being absent.
type MaterialLink struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url,omitempty"`
	Image string `yaml:"img,omitempty"`
}

var nodeTitles = map[NodeKey]string{
	NodePastExam:         "過去問",
	NodeOverview:         "概要把握",
	NodePractice:         "問題演習",
	NodeFormatDrill:      "共通テスト対策",
	NodeProgrammingDrill: "プログラミング演習",
	NodeDone:             "目標達成",
}

// NodeTitle resolves the display title for a node. Unknown keys fall back
// to the raw key so rendering never produces an empty label.
func NodeTitle(n NodeKey) string {
	if title, ok := nodeTitles[n]; ok {
		return title
	}
	return string(n)
}

func defaultLinks() map[NodeKey]MaterialLink {
	return map[NodeKey]MaterialLink{
		NodePastExam: {
			Title: "過去問",
			URL:   "https://akahon.net/products/detail/26713",
			Image: "https://akahon.net/images/cover/978-4-325-26713-3.jpg",
		},
		NodeOverview: {
			Title: "概要把握",
			URL:   "https://bookclub.kodansha.co.jp/product?item=322109000547",
			Image: "https://cdn.kdkw.jp/cover_1000/322109/322109000547_01.webp",
		},
		NodePractice: {
			Title: "問題演習",
			Image: "https://storage.googleapis.com/studio-cms-assets/projects/9YWywY00qM/s-311x445_webp_fbce2ae6-6375-4e30-8a69-c559d0e024e0.webp",
		},
		NodeFormatDrill: {
			Title: "共通テスト対策",
			Image: "https://www.obunsha.co.jp/img/product/detail/035262.jpg",
		},
		NodeProgrammingDrill: {
			Title: "プログラミング演習",
		},
	}
}
