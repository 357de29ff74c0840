package database

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeremiapane/ordering-system/models"
)

// MenuRecord is the stored form of a menu item.
type MenuRecord struct {
	ID       uint            `gorm:"primaryKey"`
	Name     string          `gorm:"type:varchar(255);not null;unique"`
	Category string          `gorm:"type:varchar(20);not null"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

func (MenuRecord) TableName() string {
	return "menu_items"
}

func (r MenuRecord) toMenuItem() (models.MenuItem, error) {
	category, err := models.ParseCategory(r.Category)
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("menu item %d: %w", r.ID, err)
	}
	return models.MenuItem{
		ID:       int(r.ID),
		Name:     r.Name,
		Category: category,
		Price:    r.Price,
	}, nil
}

func recordFrom(item models.MenuItem) MenuRecord {
	return MenuRecord{
		ID:       uint(item.ID),
		Name:     item.Name,
		Category: item.Category.String(),
		Price:    item.Price,
	}
}

// Open connects to the SQLite catalog database.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	return db, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&MenuRecord{}); err != nil {
		return fmt.Errorf("failed to migrate catalog: %w", err)
	}
	return nil
}

// SeedMenu inserts items when the menu table is empty and reports how many
// rows were written. An existing menu is left untouched.
func SeedMenu(db *gorm.DB, items []models.MenuItem, log logrus.FieldLogger) (int, error) {
	var count int64
	if err := db.Model(&MenuRecord{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count menu items: %w", err)
	}
	if count > 0 {
		log.WithField("existing", count).Debug("menu already seeded")
		return 0, nil
	}

	records := make([]MenuRecord, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return 0, err
		}
		records = append(records, recordFrom(item))
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&records).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to seed menu: %w", err)
	}

	log.WithField("items", len(records)).Info("menu seeded")
	return len(records), nil
}

// LoadCatalog reads the whole menu table and builds the immutable catalog.
func LoadCatalog(db *gorm.DB) (*models.Catalog, error) {
	var records []MenuRecord
	if err := db.Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to read menu: %w", err)
	}

	items := make([]models.MenuItem, 0, len(records))
	for _, r := range records {
		item, err := r.toMenuItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	catalog, err := models.NewCatalog(items)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}
	return catalog, nil
}
