package main

import (
	"time"

	"github.com/compravenda/api/internal/config"
	"github.com/compravenda/api/internal/logger"
	"github.com/compravenda/api/internal/models"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to connect database: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	products := []models.Product{
		{Description: "Arroz branco tipo 1 - 5kg", Price: models.NewMoneyFromFloat(21.90), Stock: 120, ExpiresOn: time.Now().AddDate(1, 0, 0)},
		{Description: "Feijão carioca - 1kg", Price: models.NewMoneyFromFloat(8.50), Stock: 200, ExpiresOn: time.Now().AddDate(0, 8, 0)},
		{Description: "Café torrado e moído - 500g", Price: models.NewMoneyFromFloat(15.00), Stock: 80, ExpiresOn: time.Now().AddDate(0, 10, 0)},
		{Description: "Leite integral - 1L", Price: models.NewMoneyFromFloat(5.20), Stock: 300, ExpiresOn: time.Now().AddDate(0, 3, 0)},
		{Description: "Óleo de soja - 900ml", Price: models.NewMoneyFromFloat(7.80), Stock: 150, ExpiresOn: time.Now().AddDate(1, 2, 0)},
		{Description: "Açúcar refinado - 1kg", Price: models.NewMoneyFromFloat(4.30), Stock: 250, ExpiresOn: time.Now().AddDate(2, 0, 0)},
	}
	for i := range products {
		var count int64
		if err := models.DB.Model(&models.Product{}).
			Where("description = ?", products[i].Description).
			Count(&count).Error; err != nil {
			stdLog.Fatalf("failed to check product: %v", err)
		}
		if count > 0 {
			continue
		}
		if err := models.DB.Create(&products[i]).Error; err != nil {
			stdLog.Fatalf("failed to seed product: %v", err)
		}
	}
	stdLog.Printf("seeded %d products", len(products))

	var existing models.User
	err := models.DB.Where("username = ?", "demo").First(&existing).Error
	if err != nil {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte("demo12345"), bcrypt.DefaultCost)
		if hashErr != nil {
			stdLog.Fatalf("failed to hash demo password: %v", hashErr)
		}
		demo := models.User{
			Username:     "demo",
			PasswordHash: string(hash),
			FirstName:    "Usuário",
			LastName:     "Demo",
			Email:        "demo@example.com",
			IsActive:     true,
			DateJoined:   time.Now(),
		}
		if err := models.DB.Create(&demo).Error; err != nil {
			stdLog.Fatalf("failed to seed demo user: %v", err)
		}
		stdLog.Printf("seeded demo user (username=demo)")
	}
}
