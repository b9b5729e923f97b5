package models

import "gorm.io/gorm"

// Image is a cached picture (box art, background) stored in the image bucket.
type Image struct {
	gorm.Model
	Source    string `gorm:"size:1024;index"`               // where the image was downloaded from
	Path      string `gorm:"size:255;uniqueIndex;not null"` // key inside the bucket
	MediaType string `gorm:"size:100"`
	Size      int64
}
