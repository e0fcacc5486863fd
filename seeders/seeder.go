package seeders

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"comanda-api/config"
	"comanda-api/models"
	"comanda-api/utils"
)

func ptrString(s string) *string {
	return &s
}

func hash(password string) string {
	h, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(h)
}

func Seed() {
	// ============= Seed Users =============
	users := []models.User{
		{Email: "admin@comanda.cr", Password: hash("admin123"), Role: "admin"},
		{Email: "cajero@comanda.cr", Password: hash("cajero123"), Role: "cashier"},
	}

	for _, user := range users {
		config.DB.FirstOrCreate(&user, models.User{Email: user.Email})
	}

	// ============= Seed Products =============
	products := []models.Product{
		{Name: "Casado con pollo", Price: 3500, Description: ptrString("Arroz, frijoles, plátano maduro y pollo en salsa"), CategoryID: "platos", CategoryName: "Platos fuertes"},
		{Name: "Casado con carne", Price: 3800, Description: ptrString("Arroz, frijoles, plátano maduro y carne en salsa"), CategoryID: "platos", CategoryName: "Platos fuertes"},
		{Name: "Gallo pinto", Price: 2500, Description: ptrString("Con huevo y natilla"), CategoryID: "platos", CategoryName: "Platos fuertes"},
		{Name: "Olla de carne", Price: 4200, Description: ptrString("Sopa con verduras y carne de res"), CategoryID: "platos", CategoryName: "Platos fuertes"},
		{Name: "Empanada de queso", Price: 800, Description: nil, CategoryID: "bocas", CategoryName: "Bocas"},
		{Name: "Patacones", Price: 1500, Description: ptrString("Con frijoles molidos"), CategoryID: "bocas", CategoryName: "Bocas"},
		{Name: "Chifrijo", Price: 2800, Description: nil, CategoryID: "bocas", CategoryName: "Bocas"},
		{Name: "Café negro", Price: 900, Description: nil, CategoryID: "bebidas", CategoryName: "Bebidas"},
		{Name: "Refresco natural", Price: 1200, Description: ptrString("Cas, tamarindo o maracuyá"), CategoryID: "bebidas", CategoryName: "Bebidas"},
		{Name: "Batido en leche", Price: 1800, Description: nil, CategoryID: "bebidas", CategoryName: "Bebidas"},
	}

	for _, product := range products {
		config.DB.FirstOrCreate(&product, models.Product{Name: product.Name})
	}

	// ============= Seed Employees =============
	employees := []models.Employee{
		{Name: "María Jiménez", Phone: "8888-1111"},
		{Name: "Carlos Rojas", Phone: "8888-2222"},
	}
	for _, emp := range employees {
		config.DB.FirstOrCreate(&emp, models.Employee{Name: emp.Name})
	}

	var count int64
	config.DB.Model(&models.Order{}).Count(&count)
	if count > 0 {
		logrus.Info("[Seed] orders already present, skipping sample data")
		return
	}

	var allProducts []models.Product
	config.DB.Find(&allProducts)
	if len(allProducts) == 0 {
		return
	}

	createOrder := func(status string) {
		n := rand.Intn(2) + 2
		var items []models.OrderItem
		for i := 0; i < n; i++ {
			p := allProducts[rand.Intn(len(allProducts))]
			items = append(items, models.OrderItem{
				Name:     p.Name,
				Price:    p.Price,
				Quantity: float64(rand.Intn(2) + 1),
			})
		}

		order := models.Order{
			Status:    status,
			Total:     models.ComputeTotal(items),
			Items:     items,
			Timestamp: time.Now(),
			CreatedAt: time.Now(),
		}
		if status == models.StatusPagada {
			order.Payments = []models.Payment{
				{PaymentMethod: "Efectivo", Amount: order.Total},
			}
		}
		config.DB.Create(&order)
	}

	for i := 0; i < 3; i++ {
		createOrder(models.StatusPorHacer)
	}
	for i := 0; i < 2; i++ {
		createOrder(models.StatusRealizada)
	}
	for i := 0; i < 3; i++ {
		createOrder(models.StatusPagada)
	}

	// ============= Seed WorkLogs =============
	var allEmployees []models.Employee
	config.DB.Find(&allEmployees)
	weekStart := utils.StartOfWeek(time.Now())
	for _, emp := range allEmployees {
		for day := 0; day < 3; day++ {
			date := utils.DateKey(weekStart.AddDate(0, 0, day))
			config.DB.Create(&models.WorkLog{
				EmployeeID: emp.ID,
				StartAt:    utils.BuildLocalDateTime(date, "08:00"),
				EndAt:      utils.BuildLocalDateTime(date, "16:30"),
			})
		}
	}

	logrus.Info("[Seed] done: 2 users, 10 products, 2 employees, 8 orders, sample work logs")
}
