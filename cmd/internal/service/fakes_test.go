package service

import (
	"errors"

	"oficinapro/cmd/internal/domain/entity"
	"oficinapro/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
)

func newTestValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("hasupper", validators.HasUpper)
	_ = validate.RegisterValidation("haslower", validators.HasLower)
	_ = validate.RegisterValidation("hasdigit", validators.HasDigit)
	_ = validate.RegisterValidation("hasspecial", validators.HasSpecial)
	_ = validate.RegisterValidation("nospaces", validators.NoWhiteSpaces)
	_ = validate.RegisterValidation("ymd", validators.IsYMD)
	_ = validate.RegisterValidation("hhmm", validators.IsHHMM)
	return validate
}

var errFakeRepo = errors.New("fake repository failure")

type fakeUserRepo struct {
	users  []*entity.User
	nextID int
}

func (f *fakeUserRepo) FindByID(id int) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindBySub(sub string) (*entity.User, error) {
	for _, u := range f.users {
		if u.SubUUID == sub {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ExistsByEmail(email string) (bool, error) {
	u, _ := f.FindByEmail(email)
	return u != nil, nil
}

func (f *fakeUserRepo) Save(user *entity.User) error {
	if user.ID == 0 {
		f.nextID++
		user.ID = f.nextID
		f.users = append(f.users, user)
	}
	return nil
}

type fakeClientRepo struct {
	clients []*entity.Client
	nextID  int
}

func (f *fakeClientRepo) FindByID(id int) (*entity.Client, error) {
	for _, c := range f.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeClientRepo) FindByUserID(userID int) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range f.clients {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeClientRepo) Save(client *entity.Client) error {
	if client.ID == 0 {
		f.nextID++
		client.ID = f.nextID
		f.clients = append(f.clients, client)
	}
	return nil
}

func (f *fakeClientRepo) Delete(client *entity.Client) error {
	for i, c := range f.clients {
		if c.ID == client.ID {
			f.clients = append(f.clients[:i], f.clients[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeScheduleRepo struct {
	scheds   []*entity.Schedule
	nextID   int
	failList bool
}

func (f *fakeScheduleRepo) FindByID(id int) (*entity.Schedule, error) {
	for _, s := range f.scheds {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeScheduleRepo) FindByUserID(userID int) ([]*entity.Schedule, error) {
	var out []*entity.Schedule
	for _, s := range f.scheds {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) FindByUserAndDate(userID int, date string) ([]*entity.Schedule, error) {
	if f.failList {
		return nil, errFakeRepo
	}
	var out []*entity.Schedule
	for _, s := range f.scheds {
		if s.UserID == userID && s.Date == date {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) Save(sched *entity.Schedule) error {
	if sched.ID == 0 {
		f.nextID++
		sched.ID = f.nextID
		f.scheds = append(f.scheds, sched)
	}
	return nil
}

func (f *fakeScheduleRepo) Delete(sched *entity.Schedule) error {
	for i, s := range f.scheds {
		if s.ID == sched.ID {
			f.scheds = append(f.scheds[:i], f.scheds[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeOrderRepo struct {
	orders []*entity.ServiceOrder
	nextID int
}

func (f *fakeOrderRepo) FindByID(id int) (*entity.ServiceOrder, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) FindByUserID(userID int) ([]*entity.ServiceOrder, error) {
	var out []*entity.ServiceOrder
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) Save(order *entity.ServiceOrder) error {
	if order.ID == 0 {
		f.nextID++
		order.ID = f.nextID
		f.orders = append(f.orders, order)
	}
	return nil
}

func (f *fakeOrderRepo) Delete(order *entity.ServiceOrder) error {
	for i, o := range f.orders {
		if o.ID == order.ID {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeProductRepo struct {
	products  []*entity.Product
	movements []*entity.StockMovement
	nextID    int
}

func (f *fakeProductRepo) FindByID(id int) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) FindByUserID(userID int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Save(product *entity.Product) error {
	if product.ID == 0 {
		f.nextID++
		product.ID = f.nextID
		f.products = append(f.products, product)
	}
	return nil
}

func (f *fakeProductRepo) Delete(product *entity.Product) error {
	for i, p := range f.products {
		if p.ID == product.ID {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeProductRepo) ApplyAdjustment(productID, newQuantity int, movement *entity.StockMovement) error {
	p, _ := f.FindByID(productID)
	if p == nil {
		return errFakeRepo
	}
	p.Quantity = newQuantity
	f.movements = append(f.movements, movement)
	return nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (f *fakeMovementRepo) FindByUserID(userID int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range f.movements {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMovementRepo) FindByProductID(userID, productID int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range f.movements {
		if m.UserID == userID && m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}
