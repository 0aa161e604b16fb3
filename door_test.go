package montyhall

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDoor(t *testing.T) {
	Convey("Given the three doors", t, func(c C) {
		Convey("When validating raw door numbers", func(c C) {
			for n := 0; n < NumDoors; n++ {
				door, err := NewDoor(n)
				c.So(err, ShouldBeNil)
				c.So(door.Valid(), ShouldBeTrue)
			}

			for _, n := range []int{-1, 3, 7} {
				_, err := NewDoor(n)
				c.So(errors.Is(err, ErrInvalidChoice), ShouldBeTrue)
			}
		})

		Convey("When reading basis labels", func(c C) {
			c.So(Door(0).BasisLabel(), ShouldEqual, "00")
			c.So(Door(1).BasisLabel(), ShouldEqual, "01")
			c.So(Door(2).BasisLabel(), ShouldEqual, "10")
			c.So(Door(5).BasisLabel(), ShouldEqual, "")
		})

		Convey("When finding the remaining door", func(c C) {
			c.So(remainingDoor(0, 1), ShouldEqual, Door(2))
			c.So(remainingDoor(1, 0), ShouldEqual, Door(2))
			c.So(remainingDoor(0, 2), ShouldEqual, Door(1))
			c.So(remainingDoor(2, 1), ShouldEqual, Door(0))
		})

		Convey("When listing them", func(c C) {
			doors := Doors()
			c.So(len(doors), ShouldEqual, NumDoors)
			for i, d := range doors {
				c.So(d, ShouldEqual, Door(i))
				c.So(d.String(), ShouldNotBeEmpty)
			}
		})
	})
}
