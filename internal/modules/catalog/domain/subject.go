package domain

import "fmt"

type Subject string

const (
	SubjectEnglish     Subject = "英語"
	SubjectMathIA      Subject = "数学IA"
	SubjectMathIAIIBC  Subject = "数学IAIIBC"
	SubjectMathIII     Subject = "数学IAIIBCIII"
	SubjectModernJP    Subject = "現代文"
	SubjectClassicalJP Subject = "古文"
	SubjectKanbun      Subject = "漢文"
	SubjectEssay       Subject = "小論文"
	SubjectPhysicsBase Subject = "物理基礎"
	SubjectChemBase    Subject = "化学基礎"
	SubjectBioBase     Subject = "生物基礎"
	SubjectGeoBase     Subject = "地学基礎"
	SubjectPhysics     Subject = "物理_物理基礎"
	SubjectChemistry   Subject = "化学_化学基礎"
	SubjectBiology     Subject = "生物_生物基礎"
	SubjectGeoscience  Subject = "地学_地学基礎"
	SubjectJPHistory   Subject = "日本史探究_歴史総合"
	SubjectWorldHist   Subject = "世界史探究_歴史総合"
	SubjectGeography   Subject = "地理総合_地理探究"
	SubjectCivicsEcon  Subject = "公共_政治経済"
	SubjectCivicsEthic Subject = "公共_倫理"
	SubjectInformatics Subject = "情報I"
	SubjectOther       Subject = "その他"
)

// Subjects is the closed subject enumeration in display order.
var Subjects = []Subject{
	SubjectEnglish,
	SubjectMathIA,
	SubjectMathIAIIBC,
	SubjectMathIII,
	SubjectModernJP,
	SubjectClassicalJP,
	SubjectKanbun,
	SubjectEssay,
	SubjectPhysicsBase,
	SubjectChemBase,
	SubjectBioBase,
	SubjectGeoBase,
	SubjectPhysics,
	SubjectChemistry,
	SubjectBiology,
	SubjectGeoscience,
	SubjectJPHistory,
	SubjectWorldHist,
	SubjectGeography,
	SubjectCivicsEcon,
	SubjectCivicsEthic,
	SubjectInformatics,
	SubjectOther,
}

func (s Subject) Validate() error {
	for _, known := range Subjects {
		if s == known {
			return nil
		}
	}
	return fmt.Errorf("unknown subject %q", string(s))
}
