package main

import (
	"log"
	"time"

	"lms/config"
	"lms/database"
	"lms/models"
	"lms/models/training"

	"golang.org/x/crypto/bcrypt"
)

// Seeds an admin account, sample companies and groups with learners,
// and a starter set of training modules with lessons and quizzes.
// Safe to re-run: existing rows are looked up by their natural keys.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	admin := seedAdmin()
	companies := seedCompanies()
	groups := seedGroups(companies)
	seedUsers(companies, groups)
	modules := seedModules()
	seedLessonsAndQuizzes(modules)
	seedGroupAssignments(groups, modules, admin.ID)

	var userCount, moduleCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&training.Module{}).Count(&moduleCount)
	log.Printf("Seeding complete: %d users, %d modules", userCount, moduleCount)
}

func seedAdmin() models.User {
	db := database.Database.Db

	var admin models.User
	if err := db.Where("email = ?", "admin@admin.local").First(&admin).Error; err == nil {
		return admin
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("Admin123!"), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin = models.User{
		FirstName:         "System",
		LastName:          "Administrator",
		Email:             "admin@admin.local",
		Password:          string(hashed),
		Role:              "ADMIN",
		IsEmailVerified:   true,
		IsProfileComplete: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	log.Printf("Created admin user %s", admin.Email)
	return admin
}

func seedCompanies() []models.Company {
	db := database.Database.Db

	seed := []models.Company{
		{Name: "TechCorp Industries", Description: "A leading technology company focused on cybersecurity solutions", IsActive: true},
		{Name: "SecureBank Financial", Description: "A financial institution with high security requirements", IsActive: true},
		{Name: "HealthTech Medical", Description: "Healthcare technology company handling sensitive patient data", IsActive: true},
	}

	companies := make([]models.Company, 0, len(seed))
	for _, c := range seed {
		var existing models.Company
		if err := db.Where("name = ?", c.Name).First(&existing).Error; err == nil {
			companies = append(companies, existing)
			continue
		}
		if err := db.Create(&c).Error; err != nil {
			log.Fatalf("Failed to create company %s: %v", c.Name, err)
		}
		companies = append(companies, c)
	}
	return companies
}

func seedGroups(companies []models.Company) []models.UserGroup {
	db := database.Database.Db

	seed := []models.UserGroup{
		{Name: "IT Security Team", Description: "Cybersecurity specialists and analysts", CompanyID: &companies[0].ID},
		{Name: "Development Team", Description: "Software developers and engineers", CompanyID: &companies[0].ID},
		{Name: "Risk Management", Description: "Financial risk and compliance team", CompanyID: &companies[1].ID},
		{Name: "IT Operations", Description: "Banking IT infrastructure team", CompanyID: &companies[1].ID},
		{Name: "Data Security", Description: "Patient data protection specialists", CompanyID: &companies[2].ID},
	}

	groups := make([]models.UserGroup, 0, len(seed))
	for _, g := range seed {
		var existing models.UserGroup
		if err := db.Where("name = ? AND company_id = ?", g.Name, g.CompanyID).First(&existing).Error; err == nil {
			groups = append(groups, existing)
			continue
		}
		if err := db.Create(&g).Error; err != nil {
			log.Fatalf("Failed to create group %s: %v", g.Name, err)
		}
		groups = append(groups, g)
	}
	return groups
}

func seedUsers(companies []models.Company, groups []models.UserGroup) {
	db := database.Database.Db

	seed := []struct {
		Email      string
		FirstName  string
		LastName   string
		CompanyIdx int
		GroupIdx   int
	}{
		{"alice.johnson@techcorp.com", "Alice", "Johnson", 0, 0},
		{"bob.smith@techcorp.com", "Bob", "Smith", 0, 1},
		{"david.risk@securebank.com", "David", "Risk", 1, 2},
		{"eve.ops@securebank.com", "Eve", "Operations", 1, 3},
		{"frank.security@healthtech.com", "Frank", "Security", 2, 4},
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("User123!"), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Failed to hash user password: %v", err)
	}

	for _, s := range seed {
		var user models.User
		if err := db.Where("email = ?", s.Email).First(&user).Error; err != nil {
			user = models.User{
				FirstName:         s.FirstName,
				LastName:          s.LastName,
				Email:             s.Email,
				Password:          string(hashed),
				Role:              "USER",
				CompanyID:         &companies[s.CompanyIdx].ID,
				IsEmailVerified:   true,
				IsProfileComplete: true,
			}
			if err := db.Create(&user).Error; err != nil {
				log.Fatalf("Failed to create user %s: %v", s.Email, err)
			}
		}

		var membership models.GroupMembership
		if err := db.Where("user_id = ? AND group_id = ?", user.ID, groups[s.GroupIdx].ID).First(&membership).Error; err != nil {
			membership = models.GroupMembership{
				UserID:     user.ID,
				GroupID:    groups[s.GroupIdx].ID,
				IsActive:   true,
				DateJoined: time.Now(),
			}
			if err := db.Create(&membership).Error; err != nil {
				log.Fatalf("Failed to create membership for %s: %v", s.Email, err)
			}
		}
	}
}

func seedModules() []training.Module {
	db := database.Database.Db

	seed := []training.Module{
		{Title: "Cybersecurity Fundamentals", Description: "Essential cybersecurity concepts, threats, and defense strategies for all employees", OrderIndex: 1, IsActive: true},
		{Title: "Password Security & Authentication", Description: "Best practices for password creation, management, and multi-factor authentication", OrderIndex: 2, IsActive: true},
		{Title: "Email Security & Phishing", Description: "Identifying and preventing email-based threats, phishing attacks, and social engineering", OrderIndex: 3, IsActive: true},
		{Title: "Data Protection & Privacy", Description: "Protecting sensitive data, understanding privacy regulations, and secure data handling", OrderIndex: 4, IsActive: true},
	}

	modules := make([]training.Module, 0, len(seed))
	for _, m := range seed {
		var existing training.Module
		if err := db.Where("title = ?", m.Title).First(&existing).Error; err == nil {
			modules = append(modules, existing)
			continue
		}
		if err := db.Create(&m).Error; err != nil {
			log.Fatalf("Failed to create module %s: %v", m.Title, err)
		}
		modules = append(modules, m)
	}
	return modules
}

func seedLessonsAndQuizzes(modules []training.Module) {
	db := database.Database.Db

	lessons := []struct {
		ModuleIdx  int
		Title      string
		Content    string
		OrderIndex int
	}{
		{0, "What is Cybersecurity?", lessonWhatIsCybersecurity, 1},
		{0, "Types of Cyber Threats", lessonTypesOfThreats, 2},
		{1, "Creating Strong Passwords", lessonStrongPasswords, 1},
		{1, "Multi-Factor Authentication", lessonMFA, 2},
		{2, "Recognizing Phishing Emails", lessonPhishing, 1},
		{3, "Handling Sensitive Data", lessonSensitiveData, 1},
	}

	created := make(map[string]training.Lesson)
	for _, l := range lessons {
		var lesson training.Lesson
		if err := db.Where("module_id = ? AND title = ?", modules[l.ModuleIdx].ID, l.Title).First(&lesson).Error; err != nil {
			lesson = training.Lesson{
				ModuleID:   modules[l.ModuleIdx].ID,
				Title:      l.Title,
				Content:    l.Content,
				OrderIndex: l.OrderIndex,
				IsActive:   true,
			}
			if err := db.Create(&lesson).Error; err != nil {
				log.Fatalf("Failed to create lesson %s: %v", l.Title, err)
			}
		}
		created[l.Title] = lesson
	}

	quizzes := []struct {
		LessonTitle  string
		Title        string
		Description  string
		PassingScore int
		Questions    []seedQuestion
	}{
		{
			LessonTitle:  "What is Cybersecurity?",
			Title:        "Cybersecurity Basics Assessment",
			Description:  "Test your understanding of basic cybersecurity concepts and the CIA triad",
			PassingScore: 80,
			Questions: []seedQuestion{
				{
					Text: "What does the 'C' in the CIA triad stand for?",
					Options: []seedOption{
						{"Confidentiality", true},
						{"Complexity", false},
						{"Coordination", false},
						{"Compliance", false},
					},
				},
				{
					Text: "What type of attack involves encrypting a victim's data and demanding payment?",
					Options: []seedOption{
						{"Phishing", false},
						{"Ransomware", true},
						{"Spoofing", false},
						{"Brute force", false},
					},
				},
				{
					Text: "Which principle ensures that data is accurate and hasn't been tampered with?",
					Options: []seedOption{
						{"Availability", false},
						{"Confidentiality", false},
						{"Integrity", true},
						{"Authentication", false},
					},
				},
			},
		},
		{
			LessonTitle:  "Creating Strong Passwords",
			Title:        "Password Security Quiz",
			Description:  "Assess your understanding of password security best practices",
			PassingScore: 85,
			Questions: []seedQuestion{
				{
					Text: "Which of the following is the strongest password?",
					Options: []seedOption{
						{"password123", false},
						{"P@ssw0rd", false},
						{"correct-horse-battery-staple-42", true},
						{"qwerty", false},
					},
				},
				{
					Text: "How often should you reuse the same password across accounts?",
					Options: []seedOption{
						{"Never", true},
						{"Only for unimportant accounts", false},
						{"Whenever it is easier to remember", false},
					},
				},
			},
		},
		{
			LessonTitle:  "Recognizing Phishing Emails",
			Title:        "Email Security Fundamentals Quiz",
			Description:  "Evaluate your understanding of email security threats and best practices",
			PassingScore: 75,
			Questions: []seedQuestion{
				{
					Text: "What should you do when an unexpected email asks you to verify your credentials?",
					Options: []seedOption{
						{"Click the link and log in quickly", false},
						{"Report it to your security team", true},
						{"Forward it to colleagues to warn them", false},
						{"Reply asking if it is legitimate", false},
					},
				},
			},
		},
	}

	for _, q := range quizzes {
		lesson, ok := created[q.LessonTitle]
		if !ok {
			continue
		}

		var quiz training.Quiz
		if err := db.Where("lesson_id = ?", lesson.ID).First(&quiz).Error; err == nil {
			continue
		}

		quiz = training.Quiz{
			LessonID:     lesson.ID,
			Title:        q.Title,
			Description:  q.Description,
			PassingScore: q.PassingScore,
			IsActive:     true,
		}
		if err := db.Create(&quiz).Error; err != nil {
			log.Fatalf("Failed to create quiz %s: %v", q.Title, err)
		}

		for qi, sq := range q.Questions {
			question := training.Question{
				QuizID:     quiz.ID,
				Text:       sq.Text,
				OrderIndex: qi + 1,
			}
			if err := db.Create(&question).Error; err != nil {
				log.Fatalf("Failed to create question: %v", err)
			}
			for oi, so := range sq.Options {
				option := training.QuestionOption{
					QuestionID: question.ID,
					Text:       so.Text,
					IsCorrect:  so.IsCorrect,
					OrderIndex: oi + 1,
				}
				if err := db.Create(&option).Error; err != nil {
					log.Fatalf("Failed to create option: %v", err)
				}
			}
		}
	}
}

func seedGroupAssignments(groups []models.UserGroup, modules []training.Module, adminID uint) {
	db := database.Database.Db

	// Everyone gets the fundamentals, security teams get everything
	assignments := []struct {
		GroupIdx  int
		ModuleIdx int
	}{
		{0, 0}, {0, 1}, {0, 2}, {0, 3},
		{1, 0}, {1, 1},
		{2, 0}, {2, 3},
		{3, 0}, {3, 1},
		{4, 0}, {4, 3},
	}

	for _, a := range assignments {
		var existing training.GroupAssignment
		if err := db.Where("group_id = ? AND module_id = ?", groups[a.GroupIdx].ID, modules[a.ModuleIdx].ID).First(&existing).Error; err == nil {
			continue
		}
		assignment := training.GroupAssignment{
			GroupID:    groups[a.GroupIdx].ID,
			ModuleID:   modules[a.ModuleIdx].ID,
			AssignedAt: time.Now(),
			AssignedBy: adminID,
		}
		if err := db.Create(&assignment).Error; err != nil {
			log.Fatalf("Failed to create group assignment: %v", err)
		}
	}
}

type seedQuestion struct {
	Text    string
	Options []seedOption
}

type seedOption struct {
	Text      string
	IsCorrect bool
}
