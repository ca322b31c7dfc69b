package area

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"tooltips/core/integration"
	"tooltips/core/storage"

	"github.com/minio/minio-go/v7"
)

// Point is a block position without world.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Region is a protected cuboid.
type Region struct {
	ID       string `json:"id"`
	World    string `json:"world"`
	Priority int    `json:"priority"`
	Min      Point  `json:"min"`
	Max      Point  `json:"max"`
}

// Contains reports whether loc lies inside the region, bounds inclusive.
func (r Region) Contains(loc integration.Location) bool {
	return loc.World == r.World &&
		loc.X >= r.Min.X && loc.X <= r.Max.X &&
		loc.Y >= r.Min.Y && loc.Y <= r.Max.Y &&
		loc.Z >= r.Min.Z && loc.Z <= r.Max.Z
}

// normalize orders the corners so Min holds the lower bound on every axis.
func (r *Region) normalize() {
	r.Min.X, r.Max.X = min(r.Min.X, r.Max.X), max(r.Min.X, r.Max.X)
	r.Min.Y, r.Max.Y = min(r.Min.Y, r.Max.Y), max(r.Min.Y, r.Max.Y)
	r.Min.Z, r.Max.Z = min(r.Min.Z, r.Max.Z), max(r.Min.Z, r.Max.Z)
}

// Document is the stored region definition file.
type Document struct {
	Regions []Region `json:"regions"`
}

// Parse decodes and validates a region document.
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode regions: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Regions))
	for i := range doc.Regions {
		reg := &doc.Regions[i]
		if reg.ID == "" || reg.World == "" {
			return nil, fmt.Errorf("region %d: id and world are required", i)
		}
		key := reg.World + "/" + reg.ID
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("region %s: duplicate id in world %s", reg.ID, reg.World)
		}
		seen[key] = struct{}{}
		reg.normalize()
	}
	return &doc, nil
}

// Push validates data as a region document and uploads it.
func Push(ctx context.Context, client storage.Client, bucket, object string, data []byte) (int, error) {
	doc, err := Parse(bytes.NewReader(data))
	if err != nil {
		return 0, err
	}
	_, err = client.PutObject(ctx, bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return 0, fmt.Errorf("failed to upload %s: %w", object, err)
	}
	return len(doc.Regions), nil
}
