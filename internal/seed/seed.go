// Package seed populates empty collections with the default catalog and
// the single admin account on first boot.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/koodakziba/koodakziba-backend/internal/accounts"
	"github.com/koodakziba/koodakziba-backend/internal/catalog"
	"github.com/koodakziba/koodakziba-backend/pkg/config"
	"github.com/koodakziba/koodakziba-backend/pkg/jcal"
	"github.com/koodakziba/koodakziba-backend/pkg/logger"
	"github.com/koodakziba/koodakziba-backend/pkg/security"
	"github.com/koodakziba/koodakziba-backend/pkg/store"
)

var timeNow = time.Now

// Seeder writes the default records when the backing files are absent.
type Seeder struct {
	products *store.Collection[catalog.Product]
	users    *store.Collection[accounts.User]
	cfg      config.SeedConfig
	password config.PasswordConfig
	logg     *logger.Logger
}

// New builds a seeder over the two collections.
func New(
	products *store.Collection[catalog.Product],
	users *store.Collection[accounts.User],
	cfg config.SeedConfig,
	password config.PasswordConfig,
	logg *logger.Logger,
) (*Seeder, error) {
	if products == nil || users == nil {
		return nil, fmt.Errorf("both collections required")
	}
	return &Seeder{products: products, users: users, cfg: cfg, password: password, logg: logg}, nil
}

// Run seeds whichever collections are still missing on disk. Existing files
// are left alone, even when empty.
func (s *Seeder) Run(ctx context.Context) error {
	if !s.products.Exists() {
		if err := s.products.Save(ctx, defaultProducts()); err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
		if s.logg != nil {
			s.logg.Info(ctx, "seeded default catalog")
		}
	}

	if !s.users.Exists() {
		admin, err := s.adminUser()
		if err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
		if err := s.users.Save(ctx, []accounts.User{admin}); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		if s.logg != nil {
			s.logg.Info(s.logg.WithField(ctx, "email", s.cfg.AdminEmail), "seeded admin account")
		}
	}
	return nil
}

func (s *Seeder) adminUser() (accounts.User, error) {
	hash, err := security.HashPassword(s.cfg.AdminPassword, s.password)
	if err != nil {
		return accounts.User{}, err
	}
	return accounts.User{
		ID:        1,
		Username:  s.cfg.AdminUsername,
		Email:     s.cfg.AdminEmail,
		Password:  hash,
		Phone:     s.cfg.AdminPhone,
		IsAdmin:   true,
		CreatedAt: jcal.Timestamp(timeNow()),
	}, nil
}

func defaultProducts() []catalog.Product {
	return []catalog.Product{
		{
			ID:              1,
			Name:            "پیراهن گلدار دخترانه",
			Price:           450000,
			Category:        "girls",
			AgeGroup:        "3-5 سال",
			Sizes:           []string{"2-3 سال", "3-4 سال", "4-5 سال"},
			Colors:          []string{"صورتی", "سفید", "آبی روشن"},
			Description:     "پیراهن گلدار زیبا مناسب فصل بهار و تابستان. جنس نخ پنبه با کیفیت بالا و راحت برای کودک.",
			Image:           "https://images.unsplash.com/photo-1518831959646-742c3a14ebf7?w=400",
			Stock:           25,
			HasDiscount:     true,
			DiscountPercent: 20,
			DiscountStart:   "1403/10/01",
			DiscountEnd:     "1403/10/30",
			CreatedAt:       "1403/09/15",
		},
		{
			ID:          2,
			Name:        "کاپشن جین پسرانه",
			Price:       680000,
			Category:    "boys",
			AgeGroup:    "6-8 سال",
			Sizes:       []string{"5-6 سال", "6-7 سال", "7-8 سال"},
			Colors:      []string{"آبی", "آبی تیره"},
			Description: "کاپشن جین شیک و مقاوم برای پسرها. مناسب برای استفاده روزمره و مهمانی.",
			Image:       "https://images.unsplash.com/photo-1519238263530-99bdd11df2ea?w=400",
			Stock:       15,
			CreatedAt:   "1403/09/16",
		},
		{
			ID:              3,
			Name:            "تیشرت یونیکورن",
			Price:           280000,
			Category:        "girls",
			AgeGroup:        "2-4 سال",
			Sizes:           []string{"1-2 سال", "2-3 سال", "3-4 سال"},
			Colors:          []string{"صورتی", "بنفش", "سفید"},
			Description:     "تیشرت با طرح یونیکورن که هر دختر کوچولویی عاشقش میشه. جنس نخ پنبه ارگانیک.",
			Image:           "https://images.unsplash.com/photo-1519238263530-99bdd11df2ea?w=400",
			Stock:           30,
			HasDiscount:     true,
			DiscountPercent: 15,
			DiscountStart:   "1403/10/01",
			DiscountEnd:     "1403/10/15",
			CreatedAt:       "1403/09/17",
		},
		{
			ID:          4,
			Name:        "ست لباس خواب دایناسور",
			Price:       350000,
			Category:    "boys",
			AgeGroup:    "4-6 سال",
			Sizes:       []string{"3-4 سال", "4-5 سال", "5-6 سال"},
			Colors:      []string{"سبز", "آبی"},
			Description: "ست لباس خواب با طرح دایناسور برای ماجراجویی‌های شبانه! جنس نرم و راحت.",
			Image:       "https://images.unsplash.com/photo-1522771739844-6a9f6d5f14af?w=400",
			Stock:       20,
			CreatedAt:   "1403/09/18",
		},
		{
			ID:              5,
			Name:            "سرهمی نوزادی",
			Price:           320000,
			Category:        "baby",
			AgeGroup:        "0-12 ماه",
			Sizes:           []string{"0-3 ماه", "3-6 ماه", "6-9 ماه", "9-12 ماه"},
			Colors:          []string{"سفید", "صورتی", "آبی", "زرد"},
			Description:     "سرهمی نوزادی با رنگ‌های پاستلی دلنشین. جنس نرم و لطیف مناسب پوست حساس نوزاد.",
			Image:           "https://images.unsplash.com/photo-1522771739844-6a9f6d5f14af?w=400",
			Stock:           40,
			HasDiscount:     true,
			DiscountPercent: 10,
			DiscountStart:   "1403/10/01",
			DiscountEnd:     "1403/10/20",
			CreatedAt:       "1403/09/19",
		},
		{
			ID:          6,
			Name:        "دامن توتو پرنسسی",
			Price:       290000,
			Category:    "girls",
			AgeGroup:    "3-5 سال",
			Sizes:       []string{"2-3 سال", "3-4 سال", "4-5 سال"},
			Colors:      []string{"صورتی", "بنفش", "طلایی"},
			Description: "دامن توتو براق مخصوص مهمانی‌ها و جشن‌ها. هر دختری با این دامن احساس پرنسس بودن میکنه!",
			Image:       "https://images.unsplash.com/photo-1518831959646-742c3a14ebf7?w=400",
			Stock:       18,
			CreatedAt:   "1403/09/20",
		},
	}
}
