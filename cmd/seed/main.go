// Command seed recreates the registry schema and loads the sample cohort so
// the UI has data to show during development.
package main

import (
	"log"

	"github.com/waritk/gradtrack-api/internal/config"
	"github.com/waritk/gradtrack-api/internal/database"
	"github.com/waritk/gradtrack-api/internal/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.Migrator().DropTable(&models.CourseEnrollment{}, &models.ThesisProgress{}, &models.Student{}); err != nil {
		log.Fatalf("failed to drop tables: %v", err)
	}
	if err := db.AutoMigrate(&models.Student{}, &models.ThesisProgress{}, &models.CourseEnrollment{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	students := sampleStudents()
	if err := db.Create(&students).Error; err != nil {
		log.Fatalf("failed to seed students: %v", err)
	}

	theses := sampleTheses()
	if err := db.Create(&theses).Error; err != nil {
		log.Fatalf("failed to seed thesis progress: %v", err)
	}

	courses := sampleCourses()
	if err := db.Create(&courses).Error; err != nil {
		log.Fatalf("failed to seed course enrollments: %v", err)
	}

	log.Printf("seeded %d students, %d thesis records, %d course enrollments", len(students), len(theses), len(courses))
}

func sampleStudents() []models.Student {
	return []models.Student{
		{
			StudentID:           "6304017",
			FullName:            "นางดลยา สุภีแดน",
			BirthDate:           ptr("27 มิ.ย.2522"),
			Age:                 intPtr(41),
			NationalID:          ptr("3301700286678"),
			IDCardAddress:       ptr("17/63 ต.ท่าวาสุกรี อ.เมือง จ.อยุธยา"),
			CurrentAddress:      ptr("34/2 ต.ปากกราน อ.เมือง จ.อยุธยา 13000"),
			Phone:               ptr("098-265-5337"),
			Email:               ptr("ultragirl27@hotmail.com"),
			UndergraduateFrom:   ptr("วพ.ชัยนาท"),
			UndergraduateGPA:    floatPtr(2.88),
			ProfessionalLicense: ptr("4511166511"),
			CurrentWorkplace:    ptr("รพ.มหาวชิราลงกรณธัญบุรี"),
			Status:              ptr(models.StudentStatusActive),
			MainAdvisor:         ptr("ผศ.ดร.ขนิตฐา"),
			CoAdvisor:           ptr("ผศ.ดร.รัชนี"),
		},
		{
			StudentID:           "6304103",
			FullName:            "น.ส.สุภัสรา",
			BirthDate:           ptr("13 เม.ย.2538"),
			Age:                 intPtr(25),
			NationalID:          ptr("1450300000000"),
			IDCardAddress:       ptr("2/1 ถ.พญาไท แขวงทุ่งพญาไท"),
			CurrentAddress:      ptr("60/284 ถ.สุขุมวิท"),
			Phone:               ptr("088-778-7028"),
			Email:               ptr("looknamsp@gmail.com"),
			UndergraduateFrom:   ptr("วพ.กรุงเทพ"),
			UndergraduateGPA:    floatPtr(3.12),
			ProfessionalLicense: ptr("6011279597"),
			CurrentWorkplace:    ptr("รพ.สมุทราปราการ"),
			Status:              ptr(models.StudentStatusActive),
			MainAdvisor:         ptr("ผศ.ดร.ขนิตฐา"),
		},
		{
			StudentID:           "6304679",
			FullName:            "นายพีรเดช",
			BirthDate:           ptr("25 ก.ย.2522"),
			Age:                 intPtr(41),
			NationalID:          ptr("3149901000000"),
			IDCardAddress:       ptr("333/60 หมู่ 1 ต.หัวรอ"),
			CurrentAddress:      ptr("333/60 หมู่ 1 ต.หัวรอ"),
			Phone:               ptr("086-701-9944"),
			Email:               ptr("ppheeraya@gmail.com"),
			UndergraduateFrom:   ptr("ม.มหิดล"),
			UndergraduateGPA:    floatPtr(2.77),
			ProfessionalLicense: ptr("4511151671"),
			CurrentWorkplace:    ptr("รพ.อยุธยา"),
			Status:              ptr(models.StudentStatusActive),
			MainAdvisor:         ptr("ผศ.ดร.ขนิตฐา"),
		},
		{
			StudentID:           "6305076",
			FullName:            "น.ส.กาญจนวดี",
			BirthDate:           ptr("8 ก.ย.2536"),
			Age:                 intPtr(27),
			NationalID:          ptr("1103701000000"),
			IDCardAddress:       ptr("45/42 หมู่ 9 ต.บางพูด"),
			CurrentAddress:      ptr("45/42 หมู่ 9 ต.บางพูด"),
			Phone:               ptr("085-055-7237"),
			Email:               ptr("Kanjanawadee_p@gmail.com"),
			UndergraduateFrom:   ptr("วพ.นนทบุรี"),
			UndergraduateGPA:    floatPtr(2.87),
			ProfessionalLicense: ptr("5911265637"),
			CurrentWorkplace:    ptr("สถาบันโรคทรวงอก"),
			Status:              ptr(models.StudentStatusActive),
			MainAdvisor:         ptr("หาญประสิทธิ์คำ"),
		},
		{
			StudentID:           "6305077",
			FullName:            "น.ส.ไปรยา",
			BirthDate:           ptr("23 ต.ค.2534"),
			Age:                 intPtr(29),
			NationalID:          ptr("1100501000000"),
			IDCardAddress:       ptr("118 หมู่ 2 ต.ตาคลี"),
			CurrentAddress:      ptr("99/82-83 ซ.2 ถ.เฉลิม"),
			Phone:               ptr("082-576-0904"),
			Email:               ptr("pk.indy999@gmail.com"),
			UndergraduateFrom:   ptr("วพ.สถาบันสมทบ"),
			UndergraduateGPA:    floatPtr(3.11),
			ProfessionalLicense: ptr("5711249668"),
			CurrentWorkplace:    ptr("รพ.ธรรมศาสตร์เฉลิมพระเกียรติ"),
			Status:              ptr(models.StudentStatusActive),
			MainAdvisor:         ptr("ผศ.ดร.วารินทร์"),
		},
	}
}

func sampleTheses() []models.ThesisProgress {
	return []models.ThesisProgress{
		{StudentID: "6304017", ProposalExamDate: ptr("29 พ.ค.65"), ProposalStatus: ptr("ผ่าน")},
		{StudentID: "6304103", ProposalExamDate: ptr("18 มิ.ย.65"), ProposalStatus: ptr("ผ่าน")},
		{StudentID: "6304679", ProposalExamDate: ptr("18 มิ.ย.65"), ProposalStatus: ptr("ผ่าน")},
	}
}

func sampleCourses() []models.CourseEnrollment {
	return []models.CourseEnrollment{
		{StudentID: "6304017", CourseCode: ptr("MAT604"), CourseName: ptr("Statistics"), Grade: ptr("A"), Semester: ptr("ภาค 1"), Year: ptr("2563")},
		{StudentID: "6304017", CourseCode: ptr("MNS623"), CourseName: ptr("Adult and Gerontological Nursing"), Grade: ptr("A"), Semester: ptr("ภาค 1"), Year: ptr("2563")},
		{StudentID: "6304017", CourseCode: ptr("MNS624"), CourseName: ptr("Adult and Gerontological Nursing Practicum I"), Grade: ptr("A"), Semester: ptr("ภาค 1"), Year: ptr("2563")},
		{StudentID: "6304103", CourseCode: ptr("MNS601"), CourseName: ptr("Health System, Policy and Nursing"), Grade: ptr("A"), Semester: ptr("ภาค 1"), Year: ptr("2563")},
		{StudentID: "6304103", CourseCode: ptr("MNS612"), CourseName: ptr("Clinical Pathophysiology"), Grade: ptr("A"), Semester: ptr("ภาค 1"), Year: ptr("2563")},
		{StudentID: "6304679", CourseCode: ptr("MNS613"), CourseName: ptr("Clinical Pharmacology"), Grade: ptr("A"), Semester: ptr("ภาค 2"), Year: ptr("2563")},
		{StudentID: "6304679", CourseCode: ptr("MNS604"), CourseName: ptr("Concepts and Theories in Nursing"), Grade: ptr("A"), Semester: ptr("ภาค 2"), Year: ptr("2563")},
	}
}

func ptr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}
