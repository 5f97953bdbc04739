package evaluation

// Professional-development rubric sections.
const (
	SectionPublications  = "3.1"
	SectionTrainings     = "3.2"
	SectionOrganizations = "3.3"
	SectionAwards        = "3.4"
	SectionOutreach      = "3.5"
	SectionExams         = "3.6"
)

type Credit struct {
	Section     string  `json:"section"`
	Description string  `json:"description"`
	Points      float64 `json:"points"`
}

// CreditTable maps achievement-item codes to their per-unit credit
// value. Codes not in the table are rejected, never scored as zero.
type CreditTable map[string]Credit

func (t CreditTable) Lookup(code string) (Credit, bool) {
	credit, ok := t[code]
	return credit, ok
}

func DefaultCreditTable() CreditTable {
	return CreditTable{
		// 3.1 publications, patents, creative works
		"patent_international":           {SectionPublications, "Patent, international", 7},
		"patent_national":                {SectionPublications, "Patent, national", 5},
		"patent_utility_model":           {SectionPublications, "Utility model registration", 3},
		"book_single_tertiary_intl":      {SectionPublications, "Book, sole author, tertiary, international publisher", 10},
		"book_single_tertiary_national":  {SectionPublications, "Book, sole author, tertiary, national publisher", 7},
		"book_co_tertiary_intl":          {SectionPublications, "Book, co-author, tertiary, international publisher", 5},
		"book_co_tertiary_national":      {SectionPublications, "Book, co-author, tertiary, national publisher", 3.5},
		"book_single_basic_intl":         {SectionPublications, "Book, sole author, basic education, international publisher", 7},
		"book_single_basic_national":     {SectionPublications, "Book, sole author, basic education, national publisher", 5},
		"book_co_basic_intl":             {SectionPublications, "Book, co-author, basic education, international publisher", 3.5},
		"book_co_basic_national":         {SectionPublications, "Book, co-author, basic education, national publisher", 2.5},
		"workbook_single":                {SectionPublications, "Workbook or manual, sole author", 3},
		"workbook_co":                    {SectionPublications, "Workbook or manual, co-author", 1.5},
		"instructional_module":           {SectionPublications, "Instructional module, adopted by institution", 2},
		"lab_manual":                     {SectionPublications, "Laboratory manual, adopted by institution", 2},
		"journal_article_international":  {SectionPublications, "Refereed journal article, international", 5},
		"journal_article_national":       {SectionPublications, "Refereed journal article, national", 3},
		"journal_article_local":          {SectionPublications, "Journal article, local/institutional", 1},
		"conference_paper_international": {SectionPublications, "Conference paper presented, international", 3},
		"conference_paper_national":      {SectionPublications, "Conference paper presented, national", 2},
		"conference_paper_local":         {SectionPublications, "Conference paper presented, local", 1},
		"monograph":                      {SectionPublications, "Monograph", 2},
		"book_review_published":          {SectionPublications, "Published book review", 1},
		"journal_editor_international":   {SectionPublications, "Editor of refereed journal, international", 5},
		"journal_editor_national":        {SectionPublications, "Editor of refereed journal, national", 3},
		"art_exhibit_international":      {SectionPublications, "Juried art exhibit, international", 5},
		"art_exhibit_national":           {SectionPublications, "Juried art exhibit, national", 3},
		"art_exhibit_local":              {SectionPublications, "Art exhibit, local", 1},
		"literary_work_published":        {SectionPublications, "Published literary work", 2},
		"musical_composition_national":   {SectionPublications, "Musical composition, nationally performed", 3},
		"musical_composition_local":      {SectionPublications, "Musical composition, locally performed", 1},
		"architectural_design_built":     {SectionPublications, "Architectural/engineering design, built", 2},
		"software_copyright":             {SectionPublications, "Copyrighted software", 3},

		// 3.2 trainings and expert services
		"training_international":         {SectionTrainings, "Training attended, international", 5},
		"training_national":              {SectionTrainings, "Training attended, national", 3},
		"training_regional":              {SectionTrainings, "Training attended, regional", 2.5},
		"training_local":                 {SectionTrainings, "Training attended, local", 2},
		"seminar_international":          {SectionTrainings, "Seminar attended, international", 3},
		"seminar_national":               {SectionTrainings, "Seminar attended, national", 2},
		"seminar_local":                  {SectionTrainings, "Seminar attended, local", 1},
		"resource_speaker_international": {SectionTrainings, "Resource speaker, international", 5},
		"resource_speaker_national":      {SectionTrainings, "Resource speaker, national", 3},
		"resource_speaker_local":         {SectionTrainings, "Resource speaker, local", 2},
		"workshop_lecturer":              {SectionTrainings, "Workshop lecturer/facilitator", 2},
		"accredited_trainer":             {SectionTrainings, "Accredited trainer of a certifying body", 3},
		"consultancy_international":      {SectionTrainings, "Consultancy engagement, international", 5},
		"consultancy_national":           {SectionTrainings, "Consultancy engagement, national", 3},
		"consultancy_local":              {SectionTrainings, "Consultancy engagement, local", 2},
		"expert_witness":                 {SectionTrainings, "Technical expert witness", 2},
		"accreditor_national":            {SectionTrainings, "Accreditor, national accrediting body", 3},
		"accreditor_regional":            {SectionTrainings, "Accreditor, regional accrediting body", 2},
		"licensure_exam_reviewer":        {SectionTrainings, "Licensure examination reviewer", 2},
		"curriculum_consultant":          {SectionTrainings, "Curriculum development consultant", 2},

		// 3.3 professional organizations and fellowships
		"org_member_full":           {SectionOrganizations, "Professional organization, full member", 2},
		"org_member_associate":      {SectionOrganizations, "Professional organization, associate member", 1},
		"org_fellow":                {SectionOrganizations, "Fellow of a professional organization", 5},
		"org_honorary_member":       {SectionOrganizations, "Honorary member", 3},
		"org_officer_international": {SectionOrganizations, "Organization officer, international", 5},
		"org_officer_national":      {SectionOrganizations, "Organization officer, national", 3},
		"org_officer_local":         {SectionOrganizations, "Organization officer, local chapter", 2},
		"org_committee_chair":       {SectionOrganizations, "Standing committee chair", 2},
		"org_committee_member":      {SectionOrganizations, "Standing committee member", 1},
		"learned_society_member":    {SectionOrganizations, "Learned society member", 2},
		"org_lifetime_member":       {SectionOrganizations, "Lifetime member", 3},
		"org_board_director":        {SectionOrganizations, "Board of directors/trustees", 4},

		// 3.4 awards and recognition
		"award_international":       {SectionAwards, "Award of distinction, international", 5},
		"award_national":            {SectionAwards, "Award of distinction, national", 3},
		"award_regional":            {SectionAwards, "Award of distinction, regional", 2},
		"award_local":               {SectionAwards, "Award of distinction, local/institutional", 1},
		"outstanding_faculty_award": {SectionAwards, "Outstanding faculty award", 3},
		"research_award_national":   {SectionAwards, "Research award, national", 3},
		"research_award_local":      {SectionAwards, "Research award, local", 1.5},
		"dissertation_award":        {SectionAwards, "Best thesis/dissertation award", 2},
		"honor_graduate_doctorate":  {SectionAwards, "Graduated with honors, doctorate", 3},
		"honor_graduate_masters":    {SectionAwards, "Graduated with honors, masters", 2},

		// 3.5 community outreach
		"community_service":             {SectionOutreach, "Community service activity", 1},
		"community_project_lead":        {SectionOutreach, "Community extension project, lead", 2},
		"community_training_conducted":  {SectionOutreach, "Community training conducted", 1.5},
		"medical_mission_participation": {SectionOutreach, "Medical/dental mission participation", 1},
		"literacy_program":              {SectionOutreach, "Literacy program involvement", 1.5},
		"livelihood_program":            {SectionOutreach, "Livelihood program facilitation", 2},
		"disaster_relief_participation": {SectionOutreach, "Disaster relief participation", 1},
		"barangay_consultancy":          {SectionOutreach, "Barangay/LGU advisory service", 1},

		// 3.6 professional examinations
		"licensure_exam":                {SectionExams, "Licensure examination passed", 5},
		"licensure_topnotch":            {SectionExams, "Licensure examination, top ten placer", 7},
		"civil_service_professional":    {SectionExams, "Civil service, professional level", 2},
		"civil_service_subprofessional": {SectionExams, "Civil service, sub-professional level", 1},
		"certification_international":   {SectionExams, "Professional certification, international body", 4},
		"certification_national":        {SectionExams, "Professional certification, national body", 3},
		"skills_certification_trade":    {SectionExams, "Trade skills certification", 2},
	}
}
