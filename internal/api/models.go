package api

import (
	"time"

	"github.com/phrazzld/enroll-api/internal/domain"
	"github.com/phrazzld/enroll-api/internal/service"
	"github.com/phrazzld/enroll-api/internal/store"
)

// startDateLayout renders product start dates for display, e.g.
// "01.09.2026 10:00 MSK".
const startDateLayout = "02.01.2006 15:04 MST"

// ProductResponse represents one purchasable product in the catalog.
type ProductResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	TeacherName  string `json:"teacher_name"`
	StartDate    string `json:"start_date"`
	Price        string `json:"price"`
	MinGroupSize int    `json:"min_group_size"`
	MaxGroupSize int    `json:"max_group_size"`
	LessonCount  int    `json:"lesson_count"`
}

// CatalogResponse is the paginated catalog payload.
type CatalogResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// LessonResponse represents one lesson of a purchased product.
type LessonResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	VideoURL string `json:"video_url"`
}

// LessonListResponse is the payload of the lesson listing endpoint.
type LessonListResponse struct {
	ProductID int64            `json:"product_id"`
	Lessons   []LessonResponse `json:"lessons"`
}

// PurchaseResponse confirms a successful purchase with the assigned group.
type PurchaseResponse struct {
	StudentID    int64  `json:"student_id"`
	ProductID    int64  `json:"product_id"`
	GroupID      int64  `json:"group_id"`
	GroupName    string `json:"group_name"`
	GroupCreated bool   `json:"group_created"`
}

// productListingToResponse converts a store.ProductListing to a
// ProductResponse, rendering the start date in the display timezone.
func productListingToResponse(listing *store.ProductListing, loc *time.Location) ProductResponse {
	return ProductResponse{
		ID:           listing.Product.ID,
		Name:         listing.Product.Name,
		TeacherName:  listing.Teacher.FullName(),
		StartDate:    listing.Product.StartDate.In(loc).Format(startDateLayout),
		Price:        listing.Product.Price.String(),
		MinGroupSize: listing.Product.MinGroupSize,
		MaxGroupSize: listing.Product.MaxGroupSize,
		LessonCount:  listing.LessonCount,
	}
}

// lessonToResponse converts a domain.Lesson to a LessonResponse.
func lessonToResponse(lesson *domain.Lesson) LessonResponse {
	return LessonResponse{
		ID:       lesson.ID,
		Name:     lesson.Name,
		VideoURL: lesson.VideoURL,
	}
}

// purchaseToResponse converts a service.EnrollmentResult to a
// PurchaseResponse.
func purchaseToResponse(studentID, productID int64, result *service.EnrollmentResult) PurchaseResponse {
	return PurchaseResponse{
		StudentID:    studentID,
		ProductID:    productID,
		GroupID:      result.Group.ID,
		GroupName:    result.Group.Name,
		GroupCreated: result.GroupCreated,
	}
}
