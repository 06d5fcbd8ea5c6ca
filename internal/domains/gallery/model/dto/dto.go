package dto

import (
	"mime/multipart"

	"beauteefool/internal/domains/gallery/model"
	"beauteefool/shared"
	"beauteefool/shared/constant"
	gDto "beauteefool/shared/dto"
	"beauteefool/shared/failure"
	gModel "beauteefool/shared/model"
	"beauteefool/shared/timezone"

	"github.com/google/uuid"
)

type CreateImageRequest struct {
	Src         string `json:"src"         validate:"required,url"`
	Category    string `json:"category"    validate:"required,oneof=hair nails makeup spa interior"`
	Alt         string `json:"alt"         validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Width       int    `json:"width"       validate:"required,gt=0"`
	Height      int    `json:"height"      validate:"required,gt=0"`
}

func (c *CreateImageRequest) ToModel(actor string) model.Image {
	now := timezone.Now()

	return model.Image{
		ID:          uuid.NewString(),
		Src:         c.Src,
		Category:    model.Category(c.Category),
		Alt:         c.Alt,
		Description: c.Description,
		Width:       c.Width,
		Height:      c.Height,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type ImageResponse struct {
	ID          string `json:"id"`
	Src         string `json:"src"`
	Category    string `json:"category"`
	Alt         string `json:"alt"`
	Description string `json:"description,omitempty"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	gDto.Metadata
}

func (r *ImageResponse) FromModel(image model.Image) {
	r.ID = image.ID
	r.Src = image.Src
	r.Category = string(image.Category)
	r.Alt = image.Alt
	r.Description = image.Description
	r.Width = image.Width
	r.Height = image.Height
	r.Metadata.FromModel(image.Metadata)
}

type GetImagesResponse struct {
	Images    []ImageResponse `json:"images"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetImagesResponse) FromModels(models []model.Image, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Images = make([]ImageResponse, len(models))
	for i, m := range models {
		r.Images[i].FromModel(m)
	}
}

// CategoryFilter narrows the list to one category. Empty and "all" select everything.
func CategoryFilter(category string) (gDto.FilterGroup, error) {
	filterGroup := gDto.NewFilterGroup(gDto.FilterGroupOperatorAnd)

	if category == constant.Empty || category == constant.CategoryAll {
		return filterGroup, nil
	}

	if !model.Category(category).Valid() {
		return filterGroup, failure.BadRequestFromString("unknown gallery category") // nolint:wrapcheck
	}

	filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
		Field:    model.FieldCategory,
		Operator: gDto.FilterOperatorEq,
		Value:    category,
		Table:    model.TableName,
	})

	return filterGroup, nil
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=10"`
	ImageFile multipart.File        `json:"-"`
}

type UploadImageResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadImageResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}
