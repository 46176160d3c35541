package model

// DegreeType is the kind of qualification an Education row records.
// Values are persisted by name.
type DegreeType string

const (
	DegreeHighSchool   DegreeType = "HighSchool"
	DegreeAssociate    DegreeType = "Associate"
	DegreeBachelor     DegreeType = "Bachelor"
	DegreeMaster       DegreeType = "Master"
	DegreeDoctorate    DegreeType = "Doctorate"
	DegreeCertificate  DegreeType = "Certificate"
	DegreeDiploma      DegreeType = "Diploma"
	DegreeProfessional DegreeType = "Professional"
	DegreeBootcamp     DegreeType = "Bootcamp"
	DegreeOnlineCourse DegreeType = "OnlineCourse"
)

// DegreeTypes returns every DegreeType in declaration order.
func DegreeTypes() []DegreeType {
	return []DegreeType{
		DegreeHighSchool,
		DegreeAssociate,
		DegreeBachelor,
		DegreeMaster,
		DegreeDoctorate,
		DegreeCertificate,
		DegreeDiploma,
		DegreeProfessional,
		DegreeBootcamp,
		DegreeOnlineCourse,
	}
}

func (d DegreeType) Valid() bool {
	for _, v := range DegreeTypes() {
		if v == d {
			return true
		}
	}
	return false
}

func (d DegreeType) String() string { return string(d) }

// ProficiencyLevel grades a Skill.
type ProficiencyLevel string

const (
	ProficiencyBeginner     ProficiencyLevel = "Beginner"
	ProficiencyIntermediate ProficiencyLevel = "Intermediate"
	ProficiencyAdvanced     ProficiencyLevel = "Advanced"
	ProficiencyExpert       ProficiencyLevel = "Expert"
)

// ProficiencyLevels returns every ProficiencyLevel from lowest to highest.
func ProficiencyLevels() []ProficiencyLevel {
	return []ProficiencyLevel{
		ProficiencyBeginner,
		ProficiencyIntermediate,
		ProficiencyAdvanced,
		ProficiencyExpert,
	}
}

func (p ProficiencyLevel) Valid() bool {
	for _, v := range ProficiencyLevels() {
		if v == p {
			return true
		}
	}
	return false
}

func (p ProficiencyLevel) String() string { return string(p) }
